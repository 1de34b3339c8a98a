package store

// stateSchema gates what counts as a usable stored document. It is
// deliberately loose: missing arrays are fine (they default to empty on
// load), but a value of the wrong shape is rejected and reseeded.
const stateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "accounts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["email"],
        "properties": {
          "firstName": {"type": "string"},
          "lastName": {"type": "string"},
          "email": {"type": "string"},
          "password": {"type": "string"},
          "role": {"type": "string"},
          "verified": {"type": "boolean"}
        }
      }
    },
    "departments": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "employees": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "empId": {"type": "string"},
          "userEmail": {"type": "string"},
          "position": {"type": "string"},
          "deptId": {"type": "integer"},
          "hireDate": {"type": "string"}
        }
      }
    },
    "requests": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "type": {"type": "string"},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "name": {"type": "string"},
                "qty": {"type": "integer"}
              }
            }
          },
          "status": {"type": "string"},
          "date": {"type": "string"},
          "employeeEmail": {"type": "string"}
        }
      }
    }
  }
}`
