// Package docs registers the Swagger document for the JSON API.
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
        "/api/v1/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "List or search venues",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name substring", "name": "search_term", "in": "query"},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.paginatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/venues/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "Get a venue with its past and upcoming shows",
                "parameters": [
                    {"type": "integer", "description": "Venue ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.VenueDetail"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/artists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Artists"],
                "summary": "List or search artists",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name substring", "name": "search_term", "in": "query"},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.paginatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/artists/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Artists"],
                "summary": "Get an artist with its past and upcoming shows",
                "parameters": [
                    {"type": "integer", "description": "Artist ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ArtistDetail"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/shows": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Shows"],
                "summary": "List shows ordered by start time",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 200)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.paginatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.paginatedResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "models.ShowListing": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "venue_id": {"type": "integer"},
                "venue_name": {"type": "string"},
                "venue_image_link": {"type": "string"},
                "artist_id": {"type": "integer"},
                "artist_name": {"type": "string"},
                "artist_image_link": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"}
            }
        },
        "handlers.VenueDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "image_link": {"type": "string"},
                "facebook_link": {"type": "string"},
                "website": {"type": "string"},
                "seeking_talent": {"type": "boolean"},
                "seeking_description": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "past_shows": {"type": "array", "items": {"$ref": "#/definitions/models.ShowListing"}},
                "upcoming_shows": {"type": "array", "items": {"$ref": "#/definitions/models.ShowListing"}},
                "past_shows_count": {"type": "integer"},
                "upcoming_shows_count": {"type": "integer"}
            }
        },
        "handlers.ArtistDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "phone": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "image_link": {"type": "string"},
                "facebook_link": {"type": "string"},
                "website": {"type": "string"},
                "seeking_venue": {"type": "boolean"},
                "seeking_description": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "past_shows": {"type": "array", "items": {"$ref": "#/definitions/models.ShowListing"}},
                "upcoming_shows": {"type": "array", "items": {"$ref": "#/definitions/models.ShowListing"}},
                "past_shows_count": {"type": "integer"},
                "upcoming_shows_count": {"type": "integer"}
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
	Title:            "Fyyur API",
	Description:      "Read-only JSON view of venues, artists and shows.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
