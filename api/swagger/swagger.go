package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Progress Card API",
        "description": "Renders student progress cards from the progresscard record collection",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Pages", "description": "Browser pages"},
        {"name": "Students", "description": "Class section rosters"},
        {"name": "Reports", "description": "Progress card documents"},
        {"name": "Operations", "description": "Health and metrics"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Class and section picker",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Class or section table missing", "schema": {"type": "string"}},
                    "500": {"description": "Error fetching data", "schema": {"type": "string"}}
                }
            }
        },
        "/students/{classId}/{sectionId}": {
            "get": {
                "tags": ["Students"],
                "summary": "Students enrolled in a class section",
                "produces": ["application/json", "text/csv"],
                "parameters": [
                    {"name": "classId", "in": "path", "required": true, "type": "integer"},
                    {"name": "sectionId", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv"]}
                ],
                "responses": {
                    "200": {"description": "Students in enrollment order", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "404": {"description": "Table missing", "schema": {"type": "string"}},
                    "500": {"description": "Error fetching students", "schema": {"type": "string"}}
                }
            }
        },
        "/report/{studentId}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Progress card page",
                "produces": ["text/html"],
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "string", "description": "Register number"}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "404": {"description": "Student, enrollment, marks or tables not found", "schema": {"type": "string"}},
                    "500": {"description": "Error generating report", "schema": {"type": "string"}}
                }
            }
        },
        "/pdf/{registerNo}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Abbreviated progress report",
                "description": "One line per mark row; totals and signature rows are not included.",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "registerNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF document", "schema": {"type": "file"}},
                    "404": {"description": "Student not found", "schema": {"type": "string"}},
                    "500": {"description": "Error generating PDF", "schema": {"type": "string"}}
                }
            }
        },
        "/xlsx/{registerNo}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Progress card workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "registerNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "xlsx workbook", "schema": {"type": "file"}},
                    "404": {"description": "Student, enrollment, marks or tables not found", "schema": {"type": "string"}},
                    "500": {"description": "Error generating workbook", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store not reachable", "schema": {"type": "string"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Operations"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Exposition format"}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "register_no": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
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
