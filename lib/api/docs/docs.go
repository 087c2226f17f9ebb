// Package docs holds the swagger description of the API, in the form
// `swag init -g lib/api/api.go -o lib/api/docs` produces.
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
        "/api/kill": {
            "post": {
                "tags": [
                    "base"
                ],
                "summary": "Stop the demo",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/shaders/reload": {
            "post": {
                "tags": [
                    "shaders"
                ],
                "summary": "Rebuild the shader program from the shader directory",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "base"
                ],
                "summary": "Get render statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.Snapshot"
                        }
                    }
                }
            }
        },
        "/api/ws": {
            "get": {
                "tags": [
                    "base"
                ],
                "summary": "Open websocket for realtime status information",
                "parameters": [
                    {
                        "type": "string",
                        "description": "websocket",
                        "name": "Upgrade",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        }
    },
    "definitions": {
        "stats.GLInfo": {
            "type": "object",
            "properties": {
                "renderer": {
                    "type": "string"
                },
                "vendor": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "stats.Snapshot": {
            "type": "object",
            "properties": {
                "demo": {
                    "type": "string"
                },
                "fps": {
                    "type": "integer"
                },
                "frames": {
                    "type": "integer"
                },
                "gl": {
                    "$ref": "#/definitions/stats.GLInfo"
                },
                "shader_reloads": {
                    "type": "integer"
                },
                "uptime": {
                    "type": "number"
                },
                "ws_clients": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "tricolour",
	Description:      "Status and control of the triangle demos",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
