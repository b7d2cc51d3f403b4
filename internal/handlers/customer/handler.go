package customer

import (
	"net/http"

	"crew/infras/otel"
	"crew/internal/domains/customer/service"
	"crew/shared/constant"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCustomers)
	})
}

// GetCustomers lists all customers known to the workshop.
// @Summary Get all customers
// @Description Retrieve every customer. Customers are created implicitly when a booking names them.
// @Tags Customer
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	customers, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}
