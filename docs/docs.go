// Package docs 手動維護的 Swagger 文件。
// 修改 handler 上的 swag 註解時，需同步更新此檔與 docs_test.go。
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
        "/auth/login": {
            "post": {
                "description": "使用 Username 與 Password 進行驗證，回傳存取令牌",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "登入使用者",
                "parameters": [
                    {"type": "string", "description": "使用者名稱", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "使用者密碼", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.InternalErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "回傳 pong，並檢查資料庫與 Redis 連線是否正常",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.InternalErrorResponse"}}
                }
            }
        },
        "/uploads/images": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "將圖片轉送至圖片託管服務並回傳公開網址",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "file", "description": "圖片檔案", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.InternalErrorResponse"}}
                }
            }
        },
        "/users/me/registrations": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "回傳當前使用者的所有報名紀錄與工作坊資訊，依工作坊日期與開始時間排序",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List my registrations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RegistrationListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.InternalErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.InternalErrorResponse": {
            "type": "object",
            "properties": {"err": {"type": "string"}}
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "api.PingResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "pong"}}
        },
        "api.UploadResponse": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "api.RegistrationListResponse": {
            "type": "object",
            "properties": {
                "registrations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/api.RegistrationResponse"}
                }
            }
        },
        "api.RegistrationResponse": {
            "type": "object",
            "properties": {
                "registration_id": {"type": "integer"},
                "status": {"type": "string"},
                "registered_at": {"type": "string"},
                "cancelled_at": {"type": "string"},
                "workshop_id": {"type": "integer"},
                "title": {"type": "string"},
                "workshop_date": {"type": "string"},
                "start_time": {"type": "string"},
                "duration_hours": {"type": "number"},
                "image_url": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Workshop API",
	Description:      "工作坊報名系統後端 API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
