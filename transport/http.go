package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/mahmudhasan/clothing-shop/application/auth"
	orderapp "github.com/mahmudhasan/clothing-shop/application/order"
	productapp "github.com/mahmudhasan/clothing-shop/application/product"
	"github.com/mahmudhasan/clothing-shop/constant"
	auditrepo "github.com/mahmudhasan/clothing-shop/repository/auditlog"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderApp   orderapp.OrderApp
	ProductApp productapp.ProductApp
	AuthApp    authapp.AuthApp
}

func NewTransport(orderApp orderapp.OrderApp, productApp productapp.ProductApp, authApp authapp.AuthApp, auditRepo auditrepo.AuditLogRepository) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:   orderApp,
		ProductApp: productApp,
		AuthApp:    authApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodGet)

	// Products
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/edit-products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/add-products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/update-products/{id}", rh.UpdateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/delete-products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// Orders; creation is audited request+response
	mux.Handle("/order", AuditMiddleware(auditRepo)(http.HandlerFunc(rh.CreateOrder))).Methods(http.MethodPost)
	mux.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/update-order/{id}", rh.UpdateOrderStatus).Methods(http.MethodPost)
	mux.HandleFunc("/order/{id}", rh.DeleteOrder).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), messageResponse{Message: cerr.Error()})
		return
	}
	writeJSON(w, constant.ErrorTypeHTTPCode[constant.ErrInternal], messageResponse{Message: constant.ErrorTypeMessage[constant.ErrInternal]})
}
