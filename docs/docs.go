// Package docs holds the swagger description served at /swagger.
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
        "/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "Get all categories",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/products": {
            "get": {
                "tags": ["Products"],
                "summary": "Get all products",
                "produces": ["application/json"],
                "parameters": [
                    {"enum": ["mountain", "road", "urban", "electric", "accessories"], "type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"enum": ["all", "parts", "electronics", "safety"], "type": "string", "name": "accessory", "in": "query"},
                    {"type": "boolean", "name": "exclude_accessories", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"enum": ["name_asc", "name_desc", "price_asc", "price_desc"], "type": "string", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get product by ID",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/pitch": {
            "get": {
                "tags": ["Products"],
                "summary": "Generate a sales pitch",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/carts": {
            "post": {
                "tags": ["Cart"],
                "summary": "Open a cart",
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/carts/{id}": {
            "get": {
                "tags": ["Cart"],
                "summary": "Get cart",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/carts/{id}/items": {
            "post": {
                "tags": ["Cart"],
                "summary": "Add product to cart",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddCartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "Empty the cart",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/carts/{id}/items/{productId}": {
            "patch": {
                "tags": ["Cart"],
                "summary": "Change line quantity",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "productId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateCartItemRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "Remove line from cart",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/carts/{id}/checkout": {
            "post": {
                "tags": ["Cart"],
                "summary": "Checkout via WhatsApp",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Current user profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Admin"],
                "summary": "Admin dashboard",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/admin/products": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Products"],
                "summary": "Create product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/products/image": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Products"],
                "summary": "Upload product image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"type": "file", "name": "image", "in": "formData", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/products/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Products"],
                "summary": "Update product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Products"],
                "summary": "Delete product",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}
            }
        },
        "/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "List back-office users",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Create back-office user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Delete back-office user",
                "description": "The last remaining account and the caller's own account cannot be deleted",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Response": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {}}
        },
        "models.ListResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {}, "total": {"type": "integer"}}
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "error": {"type": "string"}}
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.CreateUserRequest": {
            "type": "object",
            "required": ["username", "password", "fullName"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "fullName": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "editor"]}
            }
        },
        "models.ProductRequest": {
            "type": "object",
            "required": ["name", "category"],
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string", "enum": ["mountain", "road", "urban", "electric", "accessories"]},
                "image": {"type": "string"},
                "description": {"type": "string"},
                "specs": {"type": "array", "items": {"type": "string"}},
                "isNew": {"type": "boolean"}
            }
        },
        "models.AddCartItemRequest": {
            "type": "object",
            "required": ["productId"],
            "properties": {"productId": {"type": "string"}}
        },
        "models.UpdateCartItemRequest": {
            "type": "object",
            "required": ["delta"],
            "properties": {"delta": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BarBike Storefront API",
	Description:      "Bicycle shop catalog, back-office users and WhatsApp checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
