package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/inventory"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/usecase"
	"github.com/jose-aranguiz/inventario-pyme/internal/infrastructure/memory"
	apphttp "github.com/jose-aranguiz/inventario-pyme/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la API completa sobre el store en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(store.Products()),
		RegisterMovement: inventory.NewRegisterMovementUseCase(store.TxRunner()),
		Ledger:           inventory.NewLedgerUseCase(store.Movements(), store.Products()),
		ServiceName:      "inventario-pyme-test",
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decodeBody[dto.ErrorResponse](t, resp).Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La raíz responde con el mensaje de estado (para probar que vive).
func TestRaiz_Estado(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.StatusResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "inventario-pyme-test", body.Service)
}

// Flujo de ejemplo completo: crear producto, entrada de 10, salida de 15
// rechazada por stock insuficiente sin alterar el saldo.
func TestFlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/productos/", `{"name":"Widget","sku":"W1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	product := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, 0, product.CurrentStock)

	resp = doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"INCOMING","quantity":10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	movement := decodeBody[dto.MovementResponse](t, resp)
	assert.Equal(t, int64(1), movement.ID)
	assert.Equal(t, 10, movement.Quantity)
	require.NotNil(t, movement.Product, "la respuesta incluye el producto resuelto")
	assert.Equal(t, 10, movement.Product.CurrentStock)

	resp = doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"OUTGOING","quantity":15}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, resp))

	// El saldo queda intacto tras el rechazo
	resp = doJSON(t, app, http.MethodGet, "/productos/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, decodeBody[dto.ProductResponse](t, resp).CurrentStock)
}

// SKU repetido en create y update → 400 DUPLICATE_SKU.
func TestProducto_SKUDuplicado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/productos/", `{"name":"A","sku":"W1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/productos/", `{"name":"B"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/productos/", `{"name":"C","sku":"W1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_SKU", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPut, "/productos/2", `{"name":"B","sku":"W1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_SKU", errorCode(t, resp))
}

// Cuerpo sin name → 400 VALIDATION; cuerpo no-JSON → 400 INVALID_BODY.
func TestProducto_Validacion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/productos/", `{"sku":"W1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/productos/", `no soy json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

// GET/PUT/DELETE sobre un id inexistente → 404 NOT_FOUND.
func TestProducto_NoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/productos/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/productos/999", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/productos/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

// Tipo fuera de la enumeración → 400 INVALID_MOVEMENT_TYPE antes de
// llegar al motor; producto inexistente → 404.
func TestMovimiento_Errores(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/productos/", `{"name":"Widget"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"AJUSTE","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_MOVEMENT_TYPE", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"INCOMING","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":999,"kind":"INCOMING","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

// Borrar un producto con movimientos funciona y el ledger los conserva
// (con producto null en el listado).
func TestBorrarProducto_ConservaLedger(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"Widget"}`).Body.Close()
	doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"INCOMING","quantity":3}`).Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/productos/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/movimientos/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.MovementResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ProductID)
	assert.Nil(t, list[0].Product)
}

// El listado de movimientos viene en orden no creciente de timestamp y
// respeta la paginación skip/limit.
func TestListarMovimientos(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"Widget"}`).Body.Close()
	for _, body := range []string{
		`{"product_id":1,"kind":"INCOMING","quantity":1}`,
		`{"product_id":1,"kind":"INCOMING","quantity":2}`,
		`{"product_id":1,"kind":"OUTGOING","quantity":3}`,
	} {
		doJSON(t, app, http.MethodPost, "/movimientos/", body).Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/movimientos/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.MovementResponse](t, resp)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].Timestamp.Before(list[i].Timestamp))
	}
	require.NotNil(t, list[0].Product)
	assert.Equal(t, 0, list[0].Product.CurrentStock, "producto unido con su stock actual")

	resp = doJSON(t, app, http.MethodGet, "/movimientos/?skip=1&limit=1", "")
	page := decodeBody[[]dto.MovementResponse](t, resp)
	require.Len(t, page, 1)
	assert.Equal(t, 2, page[0].Quantity)
}

// El ledger por producto responde bajo /productos/:id/movimientos.
func TestLedgerPorProducto(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"A"}`).Body.Close()
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"B"}`).Body.Close()
	doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":1,"kind":"INCOMING","quantity":1}`).Body.Close()
	doJSON(t, app, http.MethodPost, "/movimientos/", `{"product_id":2,"kind":"INCOMING","quantity":2}`).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/productos/1/movimientos", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.MovementResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ProductID)

	resp = doJSON(t, app, http.MethodGet, "/productos/999/movimientos", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// bajo-stock lista los productos en o por debajo de su umbral, y la ruta
// no choca con /productos/:id.
func TestBajoStock(t *testing.T) {
	app := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"bajo","current_stock":1}`).Body.Close()
	doJSON(t, app, http.MethodPost, "/productos/", `{"name":"sobrado","current_stock":99}`).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/productos/bajo-stock", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.ProductResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "bajo", list[0].Name)
}
