// Package docs holds the Swagger 2.0 document served under /swagger.
// Keep it in step with the godoc annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `
{
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
        "/agents": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "Create agent",
                "parameters": [
                    {
                        "description": "Agent",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createAgentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Agent"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "List agents",
                "parameters": [
                    {
                        "type": "string",
                        "description": "active, frozen or expired",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "A, B or C",
                        "name": "level",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Matches code or name",
                        "name": "keyword",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "10",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "0",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult[model.Agent]"
                        }
                    }
                }
            }
        },
        "/agents/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "Get agent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Agent"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "Update agent contact fields, rate or expiry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Changes",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateAgentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Agent"
                        }
                    }
                }
            }
        },
        "/agents/{id}/level": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "Change agent tier; the rate resets to the tier default",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Level",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.changeLevelRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Agent"
                        }
                    }
                }
            }
        },
        "/agents/{id}/status": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "agents"
                ],
                "summary": "Freeze, unfreeze or renew an agent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Action",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.changeAgentStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Agent"
                        }
                    }
                }
            }
        },
        "/bills": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "List bills",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "agent_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "pending, confirmed or paid",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "10",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "0",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult[model.AgentBill]"
                        }
                    }
                }
            }
        },
        "/bills/audit/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Audit activity counts by action and operator",
                "parameters": [
                    {
                        "type": "string",
                        "description": "RFC 3339 or YYYY-MM-DD, defaults to 30 days ago",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "RFC 3339 or YYYY-MM-DD, defaults to now",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.AuditStats"
                        }
                    }
                }
            }
        },
        "/bills/export": {
            "get": {
                "description": "Streams the file, or with store=true uploads it and returns a pre-signed URL.",
                "produces": [
                    "application/octet-stream",
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Export the bills of a month",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM",
                        "name": "month",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "csv",
                        "description": "csv or xlsx",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Upload to object storage",
                        "name": "store",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.StoredExport"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/bills/generate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Generate monthly bills for one agent or all agents",
                "parameters": [
                    {
                        "description": "Month, optional agent and force flag",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.generateBillsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.GenerateSummary"
                        }
                    }
                }
            }
        },
        "/bills/reconciliation": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Reconcile the bills of a month against their payments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM",
                        "name": "month",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ReconcileReport"
                        }
                    }
                }
            }
        },
        "/bills/report": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Bill totals of a month grouped by status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM",
                        "name": "month",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.MonthlyReport"
                        }
                    }
                }
            }
        },
        "/bills/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Get bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.AgentBill"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/bills/{id}/audit-logs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Audit trail of a bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.BillAuditLog"
                        }
                    }
                }
            }
        },
        "/bills/{id}/confirm": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Confirm a pending bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.AgentBill"
                        }
                    }
                }
            }
        },
        "/bills/{id}/mark-paid": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Close a confirmed bill that needs no further payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.AgentBill"
                        }
                    }
                }
            }
        },
        "/bills/{id}/payments": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Payments recorded against a bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Record a pending payment on a confirmed bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/orders": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Create a pending order with its items",
                "parameters": [
                    {
                        "description": "Order",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Order"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "List orders",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "agent_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Order status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "10",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": "0",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult[model.Order]"
                        }
                    }
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Get order with items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Order"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/orders/{id}/items": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Add an item to a pending order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Item",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.orderItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Order"
                        }
                    }
                }
            }
        },
        "/orders/{id}/items/{itemId}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Remove an item from a pending order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Item ID",
                        "name": "itemId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Order"
                        }
                    }
                }
            }
        },
        "/orders/{id}/status": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Move an order through its lifecycle",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.changeOrderStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Order"
                        }
                    }
                }
            }
        },
        "/payments/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/payments/{id}/cancel": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Cancel a pending payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Reason",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handler.closePaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    }
                }
            }
        },
        "/payments/{id}/complete": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Complete a pending payment and apply it to its bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction reference",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handler.completePaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    }
                }
            }
        },
        "/payments/{id}/fail": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Mark a pending payment as failed",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Reason",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handler.closePaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Payment"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.changeAgentStatusRequest": {
            "type": "object",
            "required": [
                "action"
            ],
            "properties": {
                "action": {
                    "type": "string",
                    "enum": [
                        "freeze",
                        "unfreeze",
                        "renew"
                    ]
                },
                "expiry_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                }
            }
        },
        "handler.changeLevelRequest": {
            "type": "object",
            "required": [
                "level"
            ],
            "properties": {
                "level": {
                    "type": "string",
                    "enum": [
                        "A",
                        "B",
                        "C"
                    ]
                }
            }
        },
        "handler.changeOrderStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "confirmed",
                        "checked_in",
                        "completed",
                        "cancelled"
                    ]
                }
            }
        },
        "handler.closePaymentRequest": {
            "type": "object",
            "properties": {
                "reason": {
                    "type": "string",
                    "maxLength": 512
                }
            }
        },
        "handler.completePaymentRequest": {
            "type": "object",
            "properties": {
                "transaction_ref": {
                    "type": "string",
                    "maxLength": 128
                },
                "operator": {
                    "type": "string",
                    "maxLength": 64
                }
            }
        },
        "handler.createAgentRequest": {
            "type": "object",
            "required": [
                "name",
                "level",
                "expiry_date"
            ],
            "properties": {
                "code": {
                    "type": "string",
                    "maxLength": 20
                },
                "name": {
                    "type": "string",
                    "maxLength": 128
                },
                "contact_name": {
                    "type": "string",
                    "maxLength": 64
                },
                "phone": {
                    "type": "string",
                    "maxLength": 32
                },
                "email": {
                    "type": "string",
                    "format": "email",
                    "maxLength": 128
                },
                "level": {
                    "type": "string",
                    "enum": [
                        "A",
                        "B",
                        "C"
                    ]
                },
                "commission_rate": {
                    "type": "string",
                    "format": "decimal"
                },
                "valid_from": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                },
                "expiry_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                }
            }
        },
        "handler.createOrderRequest": {
            "type": "object",
            "required": [
                "agent_id",
                "hotel_name"
            ],
            "properties": {
                "agent_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "hotel_name": {
                    "type": "string",
                    "maxLength": 128
                },
                "guest_name": {
                    "type": "string",
                    "maxLength": 128
                },
                "remark": {
                    "type": "string",
                    "maxLength": 512
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.orderItemRequest"
                    }
                }
            }
        },
        "handler.createPaymentRequest": {
            "type": "object",
            "required": [
                "method"
            ],
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "method": {
                    "type": "string",
                    "enum": [
                        "bank_transfer",
                        "alipay",
                        "wechat",
                        "cash",
                        "other"
                    ]
                },
                "transaction_ref": {
                    "type": "string",
                    "maxLength": 128
                },
                "remark": {
                    "type": "string",
                    "maxLength": 512
                },
                "operator": {
                    "type": "string",
                    "maxLength": 64
                }
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {
                    "type": "string"
                },
                "error": {
                    "$ref": "#/definitions/handler.errorEnvelope"
                }
            }
        },
        "handler.generateBillsRequest": {
            "type": "object",
            "required": [
                "month"
            ],
            "properties": {
                "month": {
                    "type": "string"
                },
                "agent_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "force": {
                    "type": "boolean"
                },
                "operator": {
                    "type": "string",
                    "maxLength": 64
                }
            }
        },
        "handler.orderItemRequest": {
            "type": "object",
            "required": [
                "room_type",
                "quantity",
                "check_in",
                "check_out"
            ],
            "properties": {
                "room_type": {
                    "type": "string",
                    "maxLength": 64
                },
                "quantity": {
                    "type": "integer",
                    "minimum": 1
                },
                "unit_price": {
                    "type": "string",
                    "format": "decimal"
                },
                "cost_price": {
                    "type": "string",
                    "format": "decimal"
                },
                "check_in": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                },
                "check_out": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                }
            }
        },
        "handler.updateAgentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 128
                },
                "contact_name": {
                    "type": "string",
                    "maxLength": 64
                },
                "phone": {
                    "type": "string",
                    "maxLength": 32
                },
                "email": {
                    "type": "string",
                    "format": "email",
                    "maxLength": 128
                },
                "commission_rate": {
                    "type": "string",
                    "format": "decimal"
                },
                "expiry_date": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-01-31"
                }
            }
        },
        "model.Agent": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "contact_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "level": {
                    "type": "string"
                },
                "commission_rate": {
                    "type": "string",
                    "format": "decimal"
                },
                "status": {
                    "type": "string"
                },
                "valid_from": {
                    "type": "string",
                    "format": "date-time"
                },
                "expiry_date": {
                    "type": "string",
                    "format": "date-time"
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
        "model.AgentBill": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "bill_no": {
                    "type": "string"
                },
                "agent_id": {
                    "type": "string"
                },
                "bill_month": {
                    "type": "string"
                },
                "period_start": {
                    "type": "string",
                    "format": "date-time"
                },
                "period_end": {
                    "type": "string",
                    "format": "date-time"
                },
                "order_count": {
                    "type": "integer"
                },
                "total_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "total_cost": {
                    "type": "string",
                    "format": "decimal"
                },
                "total_profit": {
                    "type": "string",
                    "format": "decimal"
                },
                "commission_basis": {
                    "type": "string"
                },
                "commission_base": {
                    "type": "string",
                    "format": "decimal"
                },
                "commission_rate": {
                    "type": "string",
                    "format": "decimal"
                },
                "commission_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "paid_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "status": {
                    "type": "string"
                },
                "confirmed_by": {
                    "type": "string"
                },
                "confirmed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "paid_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "remark": {
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
        "model.AuditStats": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "format": "date-time"
                },
                "to": {
                    "type": "string",
                    "format": "date-time"
                },
                "total": {
                    "type": "integer"
                },
                "by_action": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "by_operator": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "model.BillAuditLog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "bill_id": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "from_status": {
                    "type": "string"
                },
                "to_status": {
                    "type": "string"
                },
                "operator": {
                    "type": "string"
                },
                "remark": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.Order": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "order_no": {
                    "type": "string"
                },
                "agent_id": {
                    "type": "string"
                },
                "hotel_name": {
                    "type": "string"
                },
                "guest_name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "total_cost": {
                    "type": "string",
                    "format": "decimal"
                },
                "remark": {
                    "type": "string"
                },
                "confirmed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "cancelled_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.OrderItem"
                    }
                }
            }
        },
        "model.OrderItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "order_id": {
                    "type": "string"
                },
                "room_type": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "string",
                    "format": "decimal"
                },
                "cost_price": {
                    "type": "string",
                    "format": "decimal"
                },
                "check_in": {
                    "type": "string",
                    "format": "date-time"
                },
                "check_out": {
                    "type": "string",
                    "format": "date-time"
                },
                "nights": {
                    "type": "integer"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "cost_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.Payment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "payment_no": {
                    "type": "string"
                },
                "bill_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "method": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "transaction_ref": {
                    "type": "string"
                },
                "remark": {
                    "type": "string"
                },
                "operator": {
                    "type": "string"
                },
                "paid_at": {
                    "type": "string",
                    "format": "date-time"
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
        "service.GenerateResult": {
            "type": "object",
            "properties": {
                "agent_id": {
                    "type": "string"
                },
                "agent_code": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "bill": {
                    "$ref": "#/definitions/model.AgentBill"
                }
            }
        },
        "service.GenerateSummary": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "force": {
                    "type": "boolean"
                },
                "created": {
                    "type": "integer"
                },
                "regenerated": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                },
                "failed": {
                    "type": "integer"
                },
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.GenerateResult"
                    }
                }
            }
        },
        "service.ListResult[model.AgentBill]": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.AgentBill"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "service.ListResult[model.Agent]": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Agent"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "service.ListResult[model.Order]": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Order"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "service.MonthlyReport": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.StatusSummary"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/service.StatusSummary"
                },
                "generated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "cached": {
                    "type": "boolean"
                }
            }
        },
        "service.ReconcileItem": {
            "type": "object",
            "properties": {
                "bill_id": {
                    "type": "string"
                },
                "bill_no": {
                    "type": "string"
                },
                "agent_id": {
                    "type": "string"
                },
                "bill_status": {
                    "type": "string"
                },
                "commission_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "paid_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "completed_payments": {
                    "type": "string",
                    "format": "decimal"
                },
                "pending_payments": {
                    "type": "string",
                    "format": "decimal"
                },
                "outstanding": {
                    "type": "string",
                    "format": "decimal"
                },
                "result": {
                    "type": "string"
                }
            }
        },
        "service.ReconcileReport": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "counts": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.ReconcileItem"
                    }
                }
            }
        },
        "service.StatusSummary": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "order_count": {
                    "type": "integer"
                },
                "total_amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "commission": {
                    "type": "string",
                    "format": "decimal"
                },
                "paid": {
                    "type": "string",
                    "format": "decimal"
                },
                "outstanding": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "service.StoredExport": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    }
}
`

// SwaggerInfo is registered with swag at init; the server may override Host and BasePath.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Hotel Agent Billing API",
	Description:      "Agents, orders, monthly commission bills and their payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
