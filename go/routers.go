// Package dealershipserver exposes the dealership REST API over gin.
package dealershipserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts are serialized as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// ApiHandleFunctions carries the handler bundle for every resource.
type ApiHandleFunctions struct {
	CustomersAPI   CustomersAPI
	EmployeesAPI   EmployeesAPI
	MotorcyclesAPI MotorcyclesAPI
	SalesAPI       SalesAPI
	DetailSalesAPI DetailSalesAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	router.Use(corsMiddleware())
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// Default handler for not yet implemented routes.
func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// corsMiddleware mirrors the wide-open cross-origin policy of the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			"CreateCustomer",
			http.MethodPost,
			"/api/customers",
			handleFunctions.CustomersAPI.CreateCustomer,
		},
		{
			"GetCustomers",
			http.MethodGet,
			"/api/customers",
			handleFunctions.CustomersAPI.GetCustomers,
		},
		{
			"GetCustomerById",
			http.MethodGet,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.GetCustomerById,
		},
		{
			"UpdateCustomer",
			http.MethodPut,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.UpdateCustomer,
		},
		{
			"DeleteCustomer",
			http.MethodDelete,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.DeleteCustomer,
		},
		{
			"CreateEmployee",
			http.MethodPost,
			"/api/employees",
			handleFunctions.EmployeesAPI.CreateEmployee,
		},
		{
			"GetEmployees",
			http.MethodGet,
			"/api/employees",
			handleFunctions.EmployeesAPI.GetEmployees,
		},
		{
			"GetEmployeeById",
			http.MethodGet,
			"/api/employees/:id",
			handleFunctions.EmployeesAPI.GetEmployeeById,
		},
		{
			"UpdateEmployee",
			http.MethodPut,
			"/api/employees/:id",
			handleFunctions.EmployeesAPI.UpdateEmployee,
		},
		{
			"DeleteEmployee",
			http.MethodDelete,
			"/api/employees/:id",
			handleFunctions.EmployeesAPI.DeleteEmployee,
		},
		{
			"CreateMotorcycle",
			http.MethodPost,
			"/api/motorcycles",
			handleFunctions.MotorcyclesAPI.CreateMotorcycle,
		},
		{
			"GetMotorcycles",
			http.MethodGet,
			"/api/motorcycles",
			handleFunctions.MotorcyclesAPI.GetMotorcycles,
		},
		{
			"GetMotorcycleById",
			http.MethodGet,
			"/api/motorcycles/:id",
			handleFunctions.MotorcyclesAPI.GetMotorcycleById,
		},
		{
			"UpdateMotorcycle",
			http.MethodPut,
			"/api/motorcycles/:id",
			handleFunctions.MotorcyclesAPI.UpdateMotorcycle,
		},
		{
			"DeleteMotorcycle",
			http.MethodDelete,
			"/api/motorcycles/:id",
			handleFunctions.MotorcyclesAPI.DeleteMotorcycle,
		},
		{
			"CreateSale",
			http.MethodPost,
			"/api/sales",
			handleFunctions.SalesAPI.CreateSale,
		},
		{
			"GetSales",
			http.MethodGet,
			"/api/sales",
			handleFunctions.SalesAPI.GetSales,
		},
		{
			"GetSaleById",
			http.MethodGet,
			"/api/sales/:id",
			handleFunctions.SalesAPI.GetSaleById,
		},
		{
			"GetSaleDetails",
			http.MethodGet,
			"/api/sales/:id/details",
			handleFunctions.SalesAPI.GetSaleDetails,
		},
		{
			"UpdateSale",
			http.MethodPut,
			"/api/sales/:id",
			handleFunctions.SalesAPI.UpdateSale,
		},
		{
			"DeleteSale",
			http.MethodDelete,
			"/api/sales/:id",
			handleFunctions.SalesAPI.DeleteSale,
		},
		{
			"CreateDetailSale",
			http.MethodPost,
			"/api/detail-sales",
			handleFunctions.DetailSalesAPI.CreateDetailSale,
		},
		{
			"GetDetailSales",
			http.MethodGet,
			"/api/detail-sales",
			handleFunctions.DetailSalesAPI.GetDetailSales,
		},
		{
			"GetDetailSaleById",
			http.MethodGet,
			"/api/detail-sales/:id",
			handleFunctions.DetailSalesAPI.GetDetailSaleById,
		},
		{
			"UpdateDetailSale",
			http.MethodPut,
			"/api/detail-sales/:id",
			handleFunctions.DetailSalesAPI.UpdateDetailSale,
		},
		{
			"DeleteDetailSale",
			http.MethodDelete,
			"/api/detail-sales/:id",
			handleFunctions.DetailSalesAPI.DeleteDetailSale,
		},
	}
}
