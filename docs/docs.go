// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/plans": {
            "post": {
                "description": "Turns a free-text travel request into a personalized plan. Stage failures degrade to fallback content instead of failing the request.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Plan a trip",
                "parameters": [
                    {
                        "description": "Travel request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.planReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Request body too large", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Session store unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/sessions/{user_id}": {
            "get": {
                "description": "Returns the stored profile and recent conversation history.",
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Get a user's session",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tools": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tools"],
                "summary": "List environment tools",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tools/{name}": {
            "post": {
                "description": "Calls one tool directly. Tool failures come back as an \"unavailable\" result, not an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tools"],
                "summary": "Invoke an environment tool",
                "parameters": [
                    {"type": "string", "description": "Tool name", "name": "name", "in": "path", "required": true},
                    {
                        "description": "Tool argument",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.invokeToolReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Unknown tool", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready"},
                    "503": {"description": "Session store unreachable"}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    },
    "definitions": {
        "http.planReq": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "user_id": {"type": "string", "maxLength": 128},
                "request": {"type": "string"}
            }
        },
        "http.invokeToolReq": {
            "type": "object",
            "properties": {
                "argument": {"type": "string", "maxLength": 1000}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Smart Travel Planner API",
	Description:      "Personalized travel itineraries from free-text requests, with session memory, knowledge retrieval and graceful degradation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
