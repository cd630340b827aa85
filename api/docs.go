// Package api registers the OpenAPI documentation of the backend with swag.
//
// The template is maintained by hand in the layout "swag init" writes and
// only covers the health check and the calculation endpoints. The swag
// annotations on the controllers document every route.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/forecast": {
            "get": {
                "description": "Simulates the stored incomes, expenses and goals day by day",
                "produces": ["application/json"],
                "tags": ["Forecast"],
                "summary": "Get forecast",
                "parameters": [
                    {"type": "string", "description": "First simulated day, defaults to today", "name": "from", "in": "query"},
                    {"type": "string", "description": "Last simulated day", "name": "to", "in": "query"},
                    {"type": "boolean", "description": "Include the allocation trace", "name": "trace", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/distribution": {
            "get": {
                "description": "Splits the income of the current period into planned, regular, wallet, goal and unexpected amounts",
                "produces": ["application/json"],
                "tags": ["Distribution"],
                "summary": "Get distribution",
                "parameters": [
                    {"type": "string", "description": "One of month, advance or salary", "name": "period", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
