// Package swagger holds the generated OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@roadtrip-service.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/budget/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Calculate trip budget",
                "description": "Estimates a price per stop and the trip total. Distances (cumulative meters per stop) are optional.",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/budget/stop-price": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Estimate one stop price",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/budget/default-prices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Fallback price table per category",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/maps/geocode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Geocode an address",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/maps/reverse-geocode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Reverse geocode coordinates",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/maps/directions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Directions over ordered waypoints",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/trips": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Save a trip",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/trips/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Get a trip",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Update trip metadata",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Delete a trip",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/trips/{id}/stops/{index}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Delete a stop",
                "description": "Removes the stop at the given index and renumbers the remaining stops densely.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/trips/{id}/directions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "Trip directions",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "mode", "in": "query"},
                    {"type": "integer", "name": "departure_time", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/trips/user/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trips"],
                "summary": "List trips of a user",
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/admin/trips": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List all trips grouped by user",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Road Trip Service API",
	Description:      "Road-trip itinerary costing and route aggregation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
