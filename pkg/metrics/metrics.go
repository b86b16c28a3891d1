// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal cuenta las peticiones atendidas por método, ruta y estado.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_http_requests_total",
		Help: "Peticiones HTTP atendidas.",
	}, []string{"method", "route", "status"})

	// MovimientosSinInventario cuenta los movimientos registrados contra
	// productos sin registro de inventario: el ledger los persiste pero no hay
	// propagación de stock. Evento no fatal, observable.
	MovimientosSinInventario = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_movimientos_sin_inventario_total",
		Help: "Movimientos sin registro de inventario asociado (sin propagación).",
	})
)
