// Package docs is generated by swag; regenerate with `swag init -g cmd/app/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Exposes Prometheus metrics in text format",
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/classes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "List classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/class.ClassView"}}}
                }
            }
        },
        "/classes/{classID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "Get a class",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/class.ClassView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/classes/{classID}/registrations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Members register themselves; staff and admins pass member_id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "Register for a class slot",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true},
                    {"description": "Slot", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registration.SlotRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "Cancel a class registration",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true},
                    {"description": "Slot", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registration.SlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/classes/{classID}/occupants": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "List slot occupants",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true},
                    {"type": "string", "description": "Weekday, e.g. monday", "name": "day", "in": "query", "required": true},
                    {"type": "string", "description": "Interval, e.g. 09:00-10:00", "name": "time", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/registration.OccupantsResponse"}}
                }
            }
        },
        "/classes/{classID}/eligible-members": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "List members who could still register for a slot",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true},
                    {"type": "string", "description": "Weekday, e.g. monday", "name": "day", "in": "query", "required": true},
                    {"type": "string", "description": "Interval, e.g. 09:00-10:00", "name": "time", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/registration.OccupantsResponse"}}
                }
            }
        },
        "/members/{memberID}/registrations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "List a member's class registrations",
                "parameters": [
                    {"type": "string", "description": "Member ID", "name": "memberID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/registration.Registration"}}}
                }
            }
        },
        "/gyms/{gymID}/timetable": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Every class slot at the gym with its booked and free places",
                "produces": ["application/json"],
                "tags": ["gyms"],
                "summary": "Weekly timetable of a gym",
                "parameters": [
                    {"type": "string", "description": "Gym ID", "name": "gymID", "in": "path", "required": true},
                    {"type": "string", "description": "Only this weekday, e.g. monday", "name": "day", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gym.Timetable"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/appointments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Members only see their own appointments",
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "List appointments",
                "parameters": [
                    {"type": "string", "description": "Staff ID", "name": "staff_id", "in": "query"},
                    {"type": "string", "description": "Member ID", "name": "member_id", "in": "query"},
                    {"type": "string", "description": "Date, YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/appointment.Appointment"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Members book for themselves; staff and admins pass member_id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Book an appointment with a staff member",
                "parameters": [
                    {"description": "Appointment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointment.BookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/appointment.Appointment"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/appointments/availability": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Check whether a staff member is free",
                "parameters": [
                    {"type": "string", "description": "Staff ID", "name": "staff_id", "in": "query", "required": true},
                    {"type": "string", "description": "Date, YYYY-MM-DD", "name": "date", "in": "query", "required": true},
                    {"type": "string", "description": "Time, HH:MM", "name": "time", "in": "query", "required": true},
                    {"type": "string", "description": "Appointment to ignore", "name": "exclude_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointment.AvailabilityResponse"}}
                }
            }
        },
        "/appointments/{appointmentID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Get an appointment",
                "parameters": [
                    {"type": "string", "description": "Appointment ID", "name": "appointmentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointment.Appointment"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Cancel an appointment",
                "parameters": [
                    {"type": "string", "description": "Appointment ID", "name": "appointmentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}
                }
            }
        },
        "/appointments/{appointmentID}/schedule": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Move an appointment to another date and time",
                "parameters": [
                    {"type": "string", "description": "Appointment ID", "name": "appointmentID", "in": "path", "required": true},
                    {"description": "New slot", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointment.RescheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointment.Appointment"}}
                }
            }
        },
        "/appointments/{appointmentID}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Mark an appointment paid or pending",
                "parameters": [
                    {"type": "string", "description": "Appointment ID", "name": "appointmentID", "in": "path", "required": true},
                    {"description": "Status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointment.StatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointment.Appointment"}}
                }
            }
        },
        "/admin/classes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "Define a class",
                "parameters": [
                    {"description": "Class", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/class.DefineClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/class.Class"}}
                }
            }
        },
        "/admin/classes/{classID}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "Update a class",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/class.ClassPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/class.Class"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["classes"],
                "summary": "Delete a class and its registrations",
                "parameters": [
                    {"type": "string", "description": "Class ID", "name": "classID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}
                }
            }
        },
        "/admin/test-email": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Queue a test email",
                "parameters": [
                    {"description": "Recipient", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/server.TestEmailRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "something went wrong"},
                "kind": {"type": "string", "example": "capacity_exceeded"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "ok"}}
        },
        "api.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "ok"}}
        },
        "appointment.Appointment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "member_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "date": {"type": "string", "example": "2025-03-10"},
                "time": {"type": "string", "example": "10:00"},
                "cost_cents": {"type": "integer"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "appointment.AvailabilityResponse": {
            "type": "object",
            "properties": {
                "staff_id": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "available": {"type": "boolean"}
            }
        },
        "appointment.BookRequest": {
            "type": "object",
            "required": ["date", "staff_id", "time"],
            "properties": {
                "member_id": {"type": "string"},
                "staff_id": {"type": "string"},
                "date": {"type": "string", "example": "2025-03-10"},
                "time": {"type": "string", "example": "10:00"},
                "status": {"type": "string", "example": "pending"}
            }
        },
        "appointment.RescheduleRequest": {
            "type": "object",
            "required": ["date", "time"],
            "properties": {
                "date": {"type": "string", "example": "2025-03-10"},
                "time": {"type": "string", "example": "11:00"}
            }
        },
        "appointment.StatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "example": "paid"}}
        },
        "class.Class": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "staff_id": {"type": "string"},
                "gym_id": {"type": "string"},
                "schedule": {"type": "object"},
                "capacity": {"type": "integer"},
                "occupants": {"type": "array", "items": {"type": "object"}}
            }
        },
        "gym.SlotAvailability": {
            "type": "object",
            "properties": {
                "class_id": {"type": "string"},
                "class_name": {"type": "string"},
                "day": {"type": "string", "example": "monday"},
                "time": {"type": "string", "example": "09:00-10:00"},
                "capacity": {"type": "integer"},
                "booked_count": {"type": "integer"},
                "available": {"type": "integer"},
                "is_full": {"type": "boolean"}
            }
        },
        "gym.Timetable": {
            "type": "object",
            "properties": {
                "gym": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "location": {"type": "string"}}},
                "slots": {"type": "array", "items": {"$ref": "#/definitions/gym.SlotAvailability"}}
            }
        },
        "class.ClassView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "staff_id": {"type": "string"},
                "staff_name": {"type": "string"},
                "gym_id": {"type": "string"},
                "gym_name": {"type": "string"},
                "schedule": {"type": "object"},
                "capacity": {"type": "integer"}
            }
        },
        "class.DefineClassRequest": {
            "type": "object",
            "required": ["capacity", "gym_id", "name", "staff_id"],
            "properties": {
                "name": {"type": "string"},
                "staff_id": {"type": "string"},
                "gym_id": {"type": "string"},
                "schedule": {"type": "object"},
                "capacity": {"type": "integer", "minimum": 1}
            }
        },
        "class.ClassPatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "staff_id": {"type": "string"},
                "gym_id": {"type": "string"},
                "schedule": {"type": "object"},
                "capacity": {"type": "integer"}
            }
        },
        "registration.OccupantsResponse": {
            "type": "object",
            "properties": {
                "class_id": {"type": "string"},
                "day": {"type": "string"},
                "time": {"type": "string"},
                "member_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "registration.Registration": {
            "type": "object",
            "properties": {
                "class_id": {"type": "string"},
                "class_name": {"type": "string"},
                "day": {"type": "string"},
                "time": {"type": "string"},
                "registered_at": {"type": "string"}
            }
        },
        "registration.SlotRequest": {
            "type": "object",
            "required": ["day", "time"],
            "properties": {
                "member_id": {"type": "string"},
                "day": {"type": "string", "example": "monday"},
                "time": {"type": "string", "example": "09:00-10:00"}
            }
        },
        "server.TestEmailRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string", "example": "member@example.com"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GymSlot API",
	Description:      "Class registration and staff appointment booking for gyms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
