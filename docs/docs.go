// Package docs holds the generated OpenAPI description served at /swagger.
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
		"/admin/contributions/pending": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.UnverifiedContribution"
							},
							"type": "array"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Pending contributions, newest first",
				"tags": [
					"moderation"
				]
			}
		},
		"/admin/contributions/pending/{id}": {
			"delete": {
				"parameters": [
					{
						"description": "Contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Must be true",
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.DeletionResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Reject a pending contribution and delete its file",
				"tags": [
					"moderation"
				]
			},
			"get": {
				"parameters": [
					{
						"description": "Contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.UnverifiedContribution"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Get a pending contribution",
				"tags": [
					"moderation"
				]
			},
			"patch": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Changes and expected version",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.MetadataRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.UnverifiedContribution"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Edit a pending contribution",
				"tags": [
					"moderation"
				]
			}
		},
		"/admin/contributions/pending/{id}/verify": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Overrides and expected version",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.MetadataRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.VerifiedContribution"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Verify a pending contribution",
				"tags": [
					"moderation"
				]
			}
		},
		"/admin/contributions/verified": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.VerifiedContribution"
							},
							"type": "array"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Verified contributions, newest first",
				"tags": [
					"publication"
				]
			}
		},
		"/admin/contributions/verified/{id}": {
			"delete": {
				"parameters": [
					{
						"description": "Verified contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Must be true",
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.DeletionResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Delete a verified contribution and its file",
				"tags": [
					"publication"
				]
			},
			"get": {
				"parameters": [
					{
						"description": "Verified contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.VerifiedContribution"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Get a verified contribution",
				"tags": [
					"publication"
				]
			},
			"patch": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Verified contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Changes and expected version",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.MetadataRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.VerifiedContribution"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Edit a verified contribution",
				"tags": [
					"publication"
				]
			}
		},
		"/admin/contributions/verified/{id}/publish": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Verified contribution ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Overrides and expected version",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.MetadataRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Material"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Publish a verified contribution to the catalog",
				"tags": [
					"publication"
				]
			}
		},
		"/admin/materials": {
			"post": {
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"description": "Title",
						"in": "formData",
						"name": "title",
						"required": true,
						"type": "string"
					},
					{
						"description": "Description",
						"in": "formData",
						"name": "description",
						"required": true,
						"type": "string"
					},
					{
						"description": "Comma-separated tags",
						"in": "formData",
						"name": "tags",
						"required": true,
						"type": "string"
					},
					{
						"description": "Credited contributor, defaults to the caller",
						"in": "formData",
						"name": "contributor_id",
						"required": false,
						"type": "string"
					},
					{
						"description": "Credited contributor name",
						"in": "formData",
						"name": "contributor_name",
						"required": false,
						"type": "string"
					},
					{
						"description": "Material file",
						"in": "formData",
						"name": "file",
						"required": true,
						"type": "file"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Material"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Publish a material directly",
				"tags": [
					"admin"
				]
			}
		},
		"/admin/materials/{id}": {
			"delete": {
				"parameters": [
					{
						"description": "Material ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Must be true",
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.DeletionResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Delete a published material and its file",
				"tags": [
					"admin"
				]
			}
		},
		"/admin/roster": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.AdminEntry"
							},
							"type": "array"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "The admin roster",
				"tags": [
					"roster"
				]
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Email",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.AddAdminRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.RosterResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Add an email to the admin roster",
				"tags": [
					"roster"
				]
			}
		},
		"/admin/roster/{email}": {
			"delete": {
				"parameters": [
					{
						"description": "Email",
						"in": "path",
						"name": "email",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Remove an email from the roster",
				"tags": [
					"roster"
				]
			},
			"get": {
				"parameters": [
					{
						"description": "Email",
						"in": "path",
						"name": "email",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.RosterResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Check whether an email is on the roster",
				"tags": [
					"roster"
				]
			}
		},
		"/admin/seed": {
			"post": {
				"consumes": [
					"application/json"
				],
				"description": "Materials are matched by file_url, so re-running updates them in place.",
				"parameters": [
					{
						"description": "Seed document",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.SeedData"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SeedResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Load roster entries and published materials",
				"tags": [
					"seed"
				]
			}
		},
		"/admin/users": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.User"
							},
							"type": "array"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "List users",
				"tags": [
					"admin"
				]
			}
		},
		"/admin/users/{id}": {
			"delete": {
				"parameters": [
					{
						"description": "User ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"description": "Must be true",
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Delete a user profile",
				"tags": [
					"admin"
				]
			},
			"get": {
				"parameters": [
					{
						"description": "User ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Get user by id",
				"tags": [
					"admin"
				]
			}
		},
		"/auth/logout": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Refresh token",
						"in": "body",
						"name": "request",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.LogoutRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"additionalProperties": {
								"type": "string"
							},
							"type": "object"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Sign out, or abandon a pending registration",
				"tags": [
					"auth"
				]
			}
		},
		"/auth/refresh": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Refresh token",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RefreshRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.AuthResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"summary": "Refresh access token",
				"tags": [
					"auth"
				]
			}
		},
		"/auth/signin": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Identity token",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.SignInRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SignInResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"summary": "Sign in with a Google ID token",
				"tags": [
					"auth"
				]
			}
		},
		"/contributions": {
			"post": {
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"description": "Title",
						"in": "formData",
						"name": "title",
						"required": true,
						"type": "string"
					},
					{
						"description": "Description",
						"in": "formData",
						"name": "description",
						"required": true,
						"type": "string"
					},
					{
						"description": "Comma-separated tags",
						"in": "formData",
						"name": "tags",
						"required": false,
						"type": "string"
					},
					{
						"description": "Material file",
						"in": "formData",
						"name": "file",
						"required": true,
						"type": "file"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.UnverifiedContribution"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Submit a study material for review",
				"tags": [
					"contributions"
				]
			}
		},
		"/contributions/mine": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.ContributionSummary"
							},
							"type": "array"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Everything the caller contributed, in any stage",
				"tags": [
					"contributions"
				]
			}
		},
		"/events": {
			"get": {
				"description": "Each event names a collection and record; clients refetch on receipt.",
				"produces": [
					"text/event-stream"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/events.Change"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Stream collection changes",
				"tags": [
					"events"
				]
			}
		},
		"/materials": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.Material"
							},
							"type": "array"
						}
					}
				},
				"summary": "All published materials, newest first",
				"tags": [
					"materials"
				]
			}
		},
		"/materials/search": {
			"get": {
				"parameters": [
					{
						"description": "Tag prefix",
						"in": "query",
						"name": "q",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"items": {
								"$ref": "#/definitions/model.Material"
							},
							"type": "array"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Materials with a tag starting with the term",
				"tags": [
					"materials"
				]
			}
		},
		"/materials/{id}": {
			"get": {
				"parameters": [
					{
						"description": "Material ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Material"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"summary": "Get a published material",
				"tags": [
					"materials"
				]
			}
		},
		"/materials/{id}/download": {
			"get": {
				"parameters": [
					{
						"description": "Material ID",
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"302": {
						"description": "Found"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"summary": "Redirect to a short-lived download URL",
				"tags": [
					"materials"
				]
			}
		},
		"/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/auth.Principal"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Current identity and roles",
				"tags": [
					"auth"
				]
			}
		},
		"/users": {
			"post": {
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Profile",
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.RegisterRequest"
						}
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Complete registration for the signed-in identity",
				"tags": [
					"users"
				]
			}
		},
		"/users/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/errors.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"summary": "Profile of the signed-in user",
				"tags": [
					"users"
				]
			}
		}
	},
	"definitions": {
		"auth.Identity": {
			"type": "object",
			"properties": {
				"uid": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				}
			}
		},
		"auth.Principal": {
			"type": "object",
			"properties": {
				"uid": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"is_admin": {
					"type": "boolean"
				},
				"is_super_admin": {
					"type": "boolean"
				}
			}
		},
		"errors.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"code": {
					"type": "string"
				}
			}
		},
		"events.Change": {
			"type": "object",
			"properties": {
				"collection": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"action": {
					"type": "string"
				}
			}
		},
		"handler.AddAdminRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			},
			"required": [
				"email"
			]
		},
		"handler.AuthResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				}
			}
		},
		"handler.LogoutRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			}
		},
		"handler.MetadataRequest": {
			"type": "object",
			"properties": {
				"version": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "string"
				}
			},
			"required": [
				"version"
			]
		},
		"handler.RefreshRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"handler.RegisterRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"gender": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string"
				},
				"college": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"gender",
				"date_of_birth",
				"college"
			]
		},
		"handler.RosterResponse": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"found": {
					"type": "boolean"
				}
			}
		},
		"handler.SignInRequest": {
			"type": "object",
			"properties": {
				"id_token": {
					"type": "string"
				}
			},
			"required": [
				"id_token"
			]
		},
		"model.AdminEntry": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.ContributionSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"stage": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"file_url": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.Material": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"source_id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"contributor_id": {
					"type": "string"
				},
				"contributor_name": {
					"type": "string"
				},
				"file_url": {
					"type": "string"
				},
				"file_type": {
					"type": "string"
				},
				"published_at": {
					"type": "string",
					"format": "date-time"
				},
				"published_by": {
					"type": "string"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.UnverifiedContribution": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"contributor_id": {
					"type": "string"
				},
				"contributor_name": {
					"type": "string"
				},
				"file_url": {
					"type": "string"
				},
				"file_type": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"version": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"college": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string"
				},
				"gender": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.VerifiedContribution": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"source_id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"contributor_id": {
					"type": "string"
				},
				"contributor_name": {
					"type": "string"
				},
				"file_url": {
					"type": "string"
				},
				"file_type": {
					"type": "string"
				},
				"submitted_at": {
					"type": "string",
					"format": "date-time"
				},
				"verified_at": {
					"type": "string",
					"format": "date-time"
				},
				"verified_by": {
					"type": "string"
				},
				"version": {
					"type": "integer"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"service.DeletionResult": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"file_deleted": {
					"type": "boolean"
				}
			}
		},
		"service.SeedData": {
			"type": "object",
			"properties": {
				"admins": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"materials": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/service.SeedMaterial"
					}
				}
			}
		},
		"service.SeedMaterial": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"file_url": {
					"type": "string"
				},
				"file_type": {
					"type": "string"
				},
				"contributor_id": {
					"type": "string"
				},
				"contributor_name": {
					"type": "string"
				}
			}
		},
		"service.SeedResult": {
			"type": "object",
			"properties": {
				"admins_added": {
					"type": "integer"
				},
				"materials_created": {
					"type": "integer"
				},
				"materials_updated": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				}
			}
		},
		"service.SignInResult": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"refresh_token": {
					"type": "string"
				},
				"principal": {
					"$ref": "#/definitions/auth.Principal"
				},
				"registered": {
					"type": "boolean"
				},
				"user": {
					"$ref": "#/definitions/model.User"
				},
				"registration": {
					"$ref": "#/definitions/auth.Identity"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the access token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "NERD API",
	Description:      "Study material sharing: contribution intake, moderation, publication and catalog search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
