// Package docs registra el documento OpenAPI servido en /swagger/. Se mantiene
// a mano junto con las anotaciones @Summary/@Router de los handlers.
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
        "/clients": {
            "get": {
                "tags": [
                    "clients"
                ],
                "summary": "List clients",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clients.ClientResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "clients"
                ],
                "summary": "Create",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.clientRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.ClientResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/clients/{clientID}": {
            "get": {
                "tags": [
                    "clients"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.ClientResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "clients"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "clients"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.clientRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.ClientResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "clients"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.clientRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.ClientResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/species": {
            "get": {
                "tags": [
                    "species"
                ],
                "summary": "List species",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/species.SpeciesResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "species"
                ],
                "summary": "Crear especie",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/species.createSpeciesRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/species.SpeciesResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/species/{speciesID}": {
            "get": {
                "tags": [
                    "species"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "speciesID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/species.SpeciesResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "species"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "speciesID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "species"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "speciesID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/species.createSpeciesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/species.SpeciesResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "species"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "speciesID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/species.createSpeciesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/species.SpeciesResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/nested_field": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "List breeds",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "species_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeds.breedResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "breeds"
                ],
                "summary": "Crear raza",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.nestedBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/nested_field/{breedID}": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "breeds"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "breeds"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.nestedBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "breeds"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.nestedBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/separate_pk": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "List breeds",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "species_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeds.breedResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "breeds"
                ],
                "summary": "Crear raza",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.separatePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/separate_pk/{breedID}": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "breeds"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "breeds"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.separatePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "breeds"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.separatePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.breedResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/writable_pk": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "List breeds",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "species_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeds.BriefResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "breeds"
                ],
                "summary": "Crear raza",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.writablePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BriefResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/breeds/writable_pk/{breedID}": {
            "get": {
                "tags": [
                    "breeds"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BriefResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "breeds"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "breeds"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.writablePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BriefResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "breeds"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.writablePKBreedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BriefResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/veterinarians": {
            "get": {
                "tags": [
                    "veterinarians"
                ],
                "summary": "List veterinarians",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/veterinarians.veterinarianResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "veterinarians"
                ],
                "summary": "Registrar veterinario",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/veterinarians.createVeterinarianRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/veterinarians.veterinarianResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/veterinarians/{vetID}": {
            "get": {
                "tags": [
                    "veterinarians"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "vetID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/veterinarians.veterinarianResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "veterinarians"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "vetID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/animals": {
            "get": {
                "tags": [
                    "animals"
                ],
                "summary": "List animals",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "client_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "species_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "breed_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalListResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                },
                "description": "Con la capability animals:view_appointments cada fila incluye appointments (ventana de \u00b130 d\u00edas)."
            },
            "post": {
                "tags": [
                    "animals"
                ],
                "summary": "Crear animal",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.animalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalDetailResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "tags": [
                    "animals"
                ],
                "summary": "Retrieve",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalDetailResponse"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "animals"
                ],
                "summary": "Delete",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "409": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "animals"
                ],
                "summary": "Update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.animalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalDetailResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "animals"
                ],
                "summary": "Partial update",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.animalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalDetailResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}/book_appointment": {
            "post": {
                "tags": [
                    "animals"
                ],
                "summary": "Reservar turno",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Solo en modo dev, CSV de capabilities",
                        "name": "X-Debug-Permissions",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.bookAppointmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.appointmentResponse"
                        }
                    },
                    "400": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "401": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    },
                    "404": {
                        "description": "problem",
                        "schema": {
                            "$ref": "#/definitions/problem.Details"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "ops"
                ],
                "summary": "Liveness",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "ok"
                    }
                }
            }
        }
    },
    "definitions": {
        "apperr.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "problem.Details": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/apperr.FieldError"
                    }
                }
            }
        },
        "clients.ClientResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "address_line_1": {
                    "type": "string"
                },
                "address_line_2": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "zip": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "clients.clientRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "address_line_1": {
                    "type": "string"
                },
                "address_line_2": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "zip": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "species.SpeciesResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "technicians": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "species.createSpeciesRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "technician_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "breeds.embeddedSpeciesRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "breeds.nestedBreedRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "$ref": "#/definitions/breeds.embeddedSpeciesRequest"
                }
            }
        },
        "breeds.separatePKBreedRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species_id": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "breeds.writablePKBreedRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "breeds.breedResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "species": {
                    "$ref": "#/definitions/species.SpeciesResponse"
                }
            }
        },
        "breeds.BriefResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "veterinarians.createVeterinarianRequest": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                }
            }
        },
        "veterinarians.veterinarianResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "animals.animalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "client_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "species_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "breed_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "approx_year_of_birth": {
                    "type": "integer"
                },
                "first_visit_date": {
                    "type": "string",
                    "format": "date"
                }
            }
        },
        "animals.appointmentBrief": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "time": {
                    "type": "string",
                    "format": "date-time"
                },
                "veterinarian": {
                    "type": "string"
                }
            }
        },
        "animals.animalListResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "client": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "approx_year_of_birth": {
                    "type": "integer"
                },
                "first_visit_date": {
                    "type": "string",
                    "format": "date"
                },
                "appointments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/animals.appointmentBrief"
                    }
                }
            }
        },
        "animals.animalDetailResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "client": {
                    "$ref": "#/definitions/clients.ClientResponse"
                },
                "species": {
                    "$ref": "#/definitions/species.SpeciesResponse"
                },
                "breed": {
                    "$ref": "#/definitions/breeds.BriefResponse"
                },
                "approx_year_of_birth": {
                    "type": "integer"
                },
                "first_visit_date": {
                    "type": "string",
                    "format": "date"
                },
                "appointments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/animals.appointmentBrief"
                    }
                }
            }
        },
        "animals.bookAppointmentRequest": {
            "type": "object",
            "properties": {
                "time": {
                    "type": "string",
                    "format": "date-time"
                },
                "veterinarian_id": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "animals.appointmentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "time": {
                    "type": "string",
                    "format": "date-time"
                },
                "animal": {
                    "type": "string",
                    "format": "uuid"
                },
                "veterinarian": {
                    "type": "string",
                    "format": "uuid"
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
	Title:            "Vet Clinic API",
	Description:      "Clientes, especies, razas, veterinarios, animales y turnos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
