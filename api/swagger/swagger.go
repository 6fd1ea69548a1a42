package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TrashTrack API",
        "description": "Municipal waste-management API: citizen reports, pickup schedules and educational content",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [
        {"name": "Authentication", "description": "Login, session rehydration and logout"},
        {"name": "Users", "description": "User accounts"},
        {"name": "PickupSchedules", "description": "Collection day and time slots"},
        {"name": "EducationalContent", "description": "Articles published by authors"},
        {"name": "Reports", "description": "Citizen reports, pickup requests and statistics"},
        {"name": "ReportSchedules", "description": "Report to pickup schedule links"},
        {"name": "System", "description": "Probes, service index and seeding"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["System"],
                "summary": "Service index",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ServiceIndex"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthStatus"}}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready", "schema": {"$ref": "#/definitions/HealthStatus"}},
                    "503": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/users/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/users/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/UserCreated"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "User ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update (omitted fields become null)",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "User ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "User ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/pickup-schedules": {
            "get": {
                "tags": ["PickupSchedules"],
                "summary": "List",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/PickupSchedule"}}
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["PickupSchedules"],
                "summary": "Create",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PickupScheduleRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PickupScheduleCreated"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/pickup-schedules/{id}": {
            "get": {
                "tags": ["PickupSchedules"],
                "summary": "Get",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Schedule ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PickupSchedule"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["PickupSchedules"],
                "summary": "Update (omitted fields become null)",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Schedule ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PickupScheduleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["PickupSchedules"],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Schedule ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/educational-content": {
            "get": {
                "tags": ["EducationalContent"],
                "summary": "List",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/EducationalContent"}}
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["EducationalContent"],
                "summary": "Create",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/EducationalContentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EducationalContentCreated"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/educational-content/{id}": {
            "get": {
                "tags": ["EducationalContent"],
                "summary": "Get",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Content ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EducationalContent"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["EducationalContent"],
                "summary": "Update (omitted fields become null)",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Content ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/EducationalContentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["EducationalContent"],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Content ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "List",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Report"}}
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "parameters": [
                    {"name": "reporter_user_id", "in": "query", "type": "integer"},
                    {"name": "assigned_collector_id", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"}
                ]
            },
            "post": {
                "tags": ["Reports"],
                "summary": "Create",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ReportRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ReportCreated"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/reports/{id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Get",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Report"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Reports"],
                "summary": "Update (columns present in the body only)",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report ID"
                    },
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Reports"],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/reports/stats": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReportStats"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/reports/pickup-requests": {
            "post": {
                "tags": ["Reports"],
                "summary": "Schedule a pickup",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/PickupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PickupScheduled"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/reports/{id}/schedule": {
            "put": {
                "tags": ["Reports"],
                "summary": "Assign or clear the report's pickup schedule",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/SetReportScheduleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReportScheduleAssigned"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/report-schedules": {
            "get": {
                "tags": ["ReportSchedules"],
                "summary": "List",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ReportSchedule"}}
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["ReportSchedules"],
                "summary": "Create",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ReportScheduleRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ReportScheduleCreated"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/report-schedules/{id}": {
            "get": {
                "tags": ["ReportSchedules"],
                "summary": "Get",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report schedule ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReportSchedule"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["ReportSchedules"],
                "summary": "Update (columns present in the body only)",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report schedule ID"
                    },
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["ReportSchedules"],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "Report schedule ID"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/api/seed": {
            "post": {
                "tags": ["System"],
                "summary": "Reseed database (development only)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "403": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {"type": "object", "properties": {"error": {"type": "string"}, "details": {"type": "string"}}},
        "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "HealthStatus": {"type": "object", "properties": {"status": {"type": "string"}, "timestamp": {"type": "string"}}},
        "ServiceIndex": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "version": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "user_role": {"type": "string"},
                "address_line1": {"type": "string", "x-nullable": true},
                "city": {"type": "string", "x-nullable": true}
            }
        },
        "UserRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string", "x-nullable": true},
                "last_name": {"type": "string", "x-nullable": true},
                "email": {"type": "string", "x-nullable": true},
                "hashed_password": {"type": "string", "description": "Plain credential, stored as a bcrypt hash"},
                "user_role": {"type": "string", "x-nullable": true},
                "address_line1": {"type": "string", "x-nullable": true},
                "city": {"type": "string", "x-nullable": true}
            }
        },
        "UserCreated": {"type": "object", "properties": {"user_id": {"type": "integer"}, "message": {"type": "string"}}},
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "user_role": {"type": "string"},
                "address_line1": {"type": "string", "x-nullable": true},
                "city": {"type": "string", "x-nullable": true},
                "token": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "PickupSchedule": {
            "type": "object",
            "properties": {
                "schedule_id": {"type": "integer"},
                "day_of_week": {"type": "string"},
                "time_slot": {"type": "string", "example": "08:00:00"},
                "is_active": {"type": "boolean"}
            }
        },
        "PickupScheduleRequest": {
            "type": "object",
            "properties": {
                "day_of_week": {"type": "string", "x-nullable": true},
                "time_slot": {"type": "string", "x-nullable": true},
                "is_active": {"type": "boolean", "x-nullable": true}
            }
        },
        "PickupScheduleCreated": {"type": "object", "properties": {"schedule_id": {"type": "integer"}, "message": {"type": "string"}}},
        "EducationalContent": {
            "type": "object",
            "properties": {
                "content_id": {"type": "integer"},
                "author_user_id": {"type": "integer", "x-nullable": true},
                "title": {"type": "string"},
                "topic": {"type": "string", "x-nullable": true},
                "content_body": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "EducationalContentRequest": {
            "type": "object",
            "properties": {
                "author_user_id": {"type": "integer", "x-nullable": true},
                "title": {"type": "string", "x-nullable": true},
                "topic": {"type": "string", "x-nullable": true},
                "content_body": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string", "x-nullable": true}
            }
        },
        "EducationalContentCreated": {"type": "object", "properties": {"content_id": {"type": "integer"}, "message": {"type": "string"}}},
        "Report": {
            "type": "object",
            "properties": {
                "report_id": {"type": "integer"},
                "reporter_user_id": {"type": "integer", "x-nullable": true},
                "report_type": {"type": "string", "x-nullable": true},
                "location_address": {"type": "string", "x-nullable": true},
                "latitude": {"type": "number", "x-nullable": true},
                "longitude": {"type": "number", "x-nullable": true},
                "description": {"type": "string", "x-nullable": true},
                "report_date": {"type": "string", "x-nullable": true, "example": "2024-01-15"},
                "status": {"type": "string", "x-nullable": true},
                "assigned_collector_id": {"type": "integer", "x-nullable": true}
            }
        },
        "ReportRequest": {
            "type": "object",
            "properties": {
                "reporter_user_id": {"type": "integer", "x-nullable": true},
                "report_type": {"type": "string", "x-nullable": true},
                "location_address": {"type": "string", "x-nullable": true},
                "latitude": {"type": "number", "x-nullable": true},
                "longitude": {"type": "number", "x-nullable": true},
                "description": {"type": "string", "x-nullable": true},
                "report_date": {"type": "string", "x-nullable": true, "example": "2024-01-15"},
                "status": {"type": "string", "x-nullable": true},
                "assigned_collector_id": {"type": "integer", "x-nullable": true}
            }
        },
        "ReportCreated": {"type": "object", "properties": {"report_id": {"type": "integer"}, "message": {"type": "string"}}},
        "CountByKey": {"type": "object", "properties": {"key": {"type": "string"}, "count": {"type": "integer"}}},
        "ScheduleUsage": {"type": "object", "properties": {"schedule_id": {"type": "integer"}, "count": {"type": "integer"}}},
        "ReportStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "by_type": {"type": "array", "items": {"$ref": "#/definitions/CountByKey"}},
                "by_status": {"type": "array", "items": {"$ref": "#/definitions/CountByKey"}},
                "by_date": {"type": "array", "items": {"$ref": "#/definitions/CountByKey"}},
                "schedule_usage": {"type": "array", "items": {"$ref": "#/definitions/ScheduleUsage"}}
            }
        },
        "PickupRequest": {
            "type": "object",
            "required": ["reporter_user_id", "schedule_id", "waste_type", "report_date"],
            "properties": {
                "reporter_user_id": {"type": "integer"},
                "schedule_id": {"type": "integer"},
                "waste_type": {"type": "string"},
                "report_date": {"type": "string"},
                "location_address": {"type": "string", "x-nullable": true}
            }
        },
        "PickupScheduled": {
            "type": "object",
            "properties": {
                "report_id": {"type": "integer"},
                "report_schedule_id": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "ReportSchedule": {
            "type": "object",
            "properties": {
                "report_schedule_id": {"type": "integer"},
                "report_id": {"type": "integer"},
                "schedule_id": {"type": "integer"}
            }
        },
        "ReportScheduleRequest": {
            "type": "object",
            "properties": {
                "report_id": {"type": "integer", "x-nullable": true},
                "schedule_id": {"type": "integer", "x-nullable": true}
            }
        },
        "ReportScheduleCreated": {
            "type": "object",
            "properties": {"report_schedule_id": {"type": "integer"}, "message": {"type": "string"}}
        },
        "SetReportScheduleRequest": {"type": "object", "properties": {"schedule_id": {"type": "integer", "x-nullable": true}}},
        "ReportScheduleAssigned": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "report_schedule_id": {"type": "integer", "x-nullable": true}}
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
