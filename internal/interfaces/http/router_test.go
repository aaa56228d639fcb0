package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-bazar-api/internal/application/auth"
	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/ai"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/media"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/punto-bazar-api/internal/interfaces/http"
)

// newTestApp arma la API completa sobre el store en memoria, sin IA configurada.
func newTestApp(t *testing.T, authRequired bool) *fiber.App {
	t.Helper()
	s := memory.NewStore()
	users, err := memory.HashAdmins(memory.DefaultAdmins, bcrypt.MinCost)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	saleRepo := memory.NewSaleRepository(s)
	log := zerolog.Nop()

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(memory.NewUserRepository(users), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		ResellerUC:   usecase.NewResellerUseCase(memory.NewResellerRepository(s)),
		CampaignUC:   usecase.NewCampaignUseCase(memory.NewCampaignRepository(s)),
		ProductUC:    usecase.NewProductUseCase(memory.NewProductRepository(s)),
		CustomerUC:   usecase.NewCustomerUseCase(memory.NewCustomerRepository(s)),
		RecordSale:   sales.NewRecordSaleUseCase(memory.NewTxRunner(s), log),
		SaleQuery:    sales.NewQueryUseCase(saleRepo),
		Receipt:      sales.NewReceiptUseCase(saleRepo, pdf.NewMarotoReceiptGenerator(), "Punto Bazar"),
		AIUC:         usecase.NewAIUseCase(ai.NewOpenAIService("", "gpt-test"), time.Second, log),
		MediaUC:      usecase.NewMediaUseCase(media.NewBlobStorage(bucket, "/uploads")),
		Log:          log,
		JWTSecret:    testJWTSecret,
		AuthRequired: authRequired,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, header ...string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func decodeList(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(raw, &l), string(raw))
	return l
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := doJSON(t, app, http.MethodPost, "/api/login", `{"usuario":"ricardo","password":"1234"}`)
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Ricardo", body["nombre"])
	assert.NotEmpty(t, body["token"])

	status, raw = doJSON(t, app, http.MethodPost, "/api/login", `{"usuario":"ricardo","password":"mala"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Usuario o clave incorrectos.", decode(t, raw)["mensaje"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/login", "")
	assert.Equal(t, http.StatusUnauthorized, status, "cuerpo vacío equivale a credenciales vacías")
}

func TestProductos_AltaYValidacion(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Taza"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Nombre y precio son obligatorios.", decode(t, raw)["mensaje"])

	status, raw = doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Taza","precio":"1500","colores":"rojo, azul"}`)
	require.Equal(t, http.StatusOK, status)
	p := decode(t, raw)
	assert.Equal(t, float64(1), p["id"])
	assert.Equal(t, float64(1500), p["precio"])
	assert.Equal(t, float64(1), p["stock"])
	assert.Equal(t, []any{"rojo", "azul"}, p["colores"])
	assert.Equal(t, true, p["activo"])
}

func TestProductos_RutasFijasAntesDeID(t *testing.T) {
	app := newTestApp(t, false)
	doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Mate","precio":2000,"stock":0}`)
	doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Vaso","precio":500,"stock":3}`)

	status, raw := doJSON(t, app, http.MethodGet, "/api/productos/activos", "")
	require.Equal(t, http.StatusOK, status)
	activos := decodeList(t, raw)
	require.Len(t, activos, 1, "sin stock no aparece en el catálogo")
	assert.Equal(t, "Vaso", activos[0]["nombre"])

	status, raw = doJSON(t, app, http.MethodGet, "/api/productos/ofertas", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeList(t, raw))
}

func TestProductos_NoEncontrado(t *testing.T) {
	app := newTestApp(t, false)

	for _, path := range []string{"/api/productos/99", "/api/productos/abc"} {
		status, raw := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "Producto no encontrado.", decode(t, raw)["mensaje"], path)
	}
	status, _ := doJSON(t, app, http.MethodPatch, "/api/productos/99/stock", `{"stock":4}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductos_StockNoLimpiaOferta(t *testing.T) {
	app := newTestApp(t, false)
	doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Mochila","precio":1000,"stock":5}`)

	status, raw := doJSON(t, app, http.MethodPatch, "/api/productos/1/oferta", `{"oferta_tipo":"porcentaje","oferta_valor":20,"oferta_etiqueta":"20% OFF"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(800), decode(t, raw)["precio_final"])

	status, raw = doJSON(t, app, http.MethodPatch, "/api/productos/1/stock", `{"stock":9}`)
	require.Equal(t, http.StatusOK, status)
	p := decode(t, raw)
	assert.Equal(t, float64(9), p["stock"])
	assert.Equal(t, "porcentaje", p["oferta_tipo"])
	assert.Equal(t, "20% OFF", p["oferta_etiqueta"])

	status, raw = doJSON(t, app, http.MethodPatch, "/api/productos/1", `{"nombre":"Mochila XL"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "porcentaje", decode(t, raw)["oferta_tipo"], "actualización sin claves de oferta no la limpia")

	status, raw = doJSON(t, app, http.MethodGet, "/api/productos/ofertas", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeList(t, raw), 1)
}

func TestCampanias_HoyYExclusividad(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := doJSON(t, app, http.MethodGet, "/api/campanias/hoy", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", strings.TrimSpace(string(raw)))

	status, raw = doJSON(t, app, http.MethodPost, "/api/campanias", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Se necesita al menos título o texto.", decode(t, raw)["mensaje"])

	doJSON(t, app, http.MethodPost, "/api/campanias", `{"titulo":"Hot Sale","activa":true}`)
	doJSON(t, app, http.MethodPost, "/api/campanias", `{"titulo":"Navidad"}`)

	status, raw = doJSON(t, app, http.MethodPatch, "/api/campanias/2/activa", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, decode(t, raw)["activa"])

	_, raw = doJSON(t, app, http.MethodGet, "/api/campanias", "")
	activas := 0
	for _, c := range decodeList(t, raw) {
		if c["activa"] == true {
			activas++
		}
	}
	assert.Equal(t, 1, activas)

	_, raw = doJSON(t, app, http.MethodGet, "/api/campanias/hoy", "")
	assert.Equal(t, "Navidad", decode(t, raw)["titulo"])

	status, raw = doJSON(t, app, http.MethodDelete, "/api/campanias/7", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Campaña no encontrada.", decode(t, raw)["mensaje"])
}

func TestRevendedores_ToggleActivo(t *testing.T) {
	app := newTestApp(t, false)

	status, _ := doJSON(t, app, http.MethodPost, "/api/revendedores", `{"telefono":"123"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw := doJSON(t, app, http.MethodPost, "/api/revendedores", `{"nombre":"Ana"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, decode(t, raw)["activo"])

	_, raw = doJSON(t, app, http.MethodPatch, "/api/revendedores/1/activo", "")
	assert.Equal(t, false, decode(t, raw)["activo"], "sin cuerpo alterna")

	_, raw = doJSON(t, app, http.MethodPatch, "/api/revendedores/1/activo", `{"activo":false}`)
	assert.Equal(t, false, decode(t, raw)["activo"])

	status, raw = doJSON(t, app, http.MethodPatch, "/api/revendedores/9/activo", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Revendedor no encontrado.", decode(t, raw)["mensaje"])
}

func TestVentas_RegistraYDescuentaStock(t *testing.T) {
	app := newTestApp(t, false)
	doJSON(t, app, http.MethodPost, "/api/productos", `{"nombre":"Taza","precio":100,"stock":5}`)
	doJSON(t, app, http.MethodPost, "/api/revendedores", `{"nombre":"Ana"}`)

	status, raw := doJSON(t, app, http.MethodPost, "/api/ventas",
		`{"revendedor_id":1,"comision_porcentaje":10,"cliente_texto":"Marta","items":[{"producto_id":1,"cantidad":3}]}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	v := decode(t, raw)
	assert.Equal(t, float64(300), v["total"])
	assert.Equal(t, float64(30), v["comision_calculada"])
	assert.Equal(t, "Ana", v["revendedor_nombre"])
	assert.Equal(t, "Marta", v["cliente"])
	assert.NotNil(t, v["cliente_id"])

	_, raw = doJSON(t, app, http.MethodGet, "/api/productos/1", "")
	assert.Equal(t, float64(2), decode(t, raw)["stock"])

	_, raw = doJSON(t, app, http.MethodGet, "/api/clientes", "")
	clientes := decodeList(t, raw)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Creado desde venta", clientes[0]["notas"])

	status, raw = doJSON(t, app, http.MethodGet, "/api/ventas/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(300), decode(t, raw)["total"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/ventas/2", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestVentas_Comprobante(t *testing.T) {
	app := newTestApp(t, false)
	doJSON(t, app, http.MethodPost, "/api/ventas", `{"total":2500,"detalle":"varios"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/1/comprobante", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "venta_1.pdf")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestClientes_EditarYEliminar(t *testing.T) {
	app := newTestApp(t, false)
	doJSON(t, app, http.MethodPost, "/api/clientes", `{"nombre":"Luis","zona":"Centro"}`)

	status, raw := doJSON(t, app, http.MethodPatch, "/api/clientes/1", `{"telefono":"555"}`)
	require.Equal(t, http.StatusOK, status)
	c := decode(t, raw)
	assert.Equal(t, "555", c["telefono"])
	assert.Equal(t, "Centro", c["zona"])

	status, _ = doJSON(t, app, http.MethodPatch, "/api/clientes/1", `{"nombre":""}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/clientes/1", "")
	assert.Equal(t, http.StatusOK, status)
	status, raw = doJSON(t, app, http.MethodDelete, "/api/clientes/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Cliente no encontrado.", decode(t, raw)["mensaje"])
}

func TestIA_SinConfiguracionDevuelveOKFalse(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := doJSON(t, app, http.MethodPost, "/api/ia/descripcion-producto", `{"nombre":"Taza"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"ok": false, "texto": ""}, decode(t, raw))

	status, raw = doJSON(t, app, http.MethodPost, "/api/ia/campania", `{"idea":"Día del niño"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, decode(t, raw)["ok"])
}

func TestUploadImagen(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := doJSON(t, app, http.MethodPost, "/api/upload-imagen", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No se recibió archivo.", decode(t, raw)["mensaje"])

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("imagen", "foto.PNG")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-imagen", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out, _ := io.ReadAll(resp.Body)
	body := decode(t, out)
	assert.Equal(t, true, body["ok"])
	url, _ := body["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
}

func TestUploadImagen_ArchivoVacioYSinExtension(t *testing.T) {
	app := newTestApp(t, false)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_, err := w.CreateFormFile("imagen", "foto")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-imagen", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out, _ := io.ReadAll(resp.Body)
	url, _ := decode(t, out)["url"].(string)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
}

func TestAuthRequerida_RutasPublicasYProtegidas(t *testing.T) {
	app := newTestApp(t, true)

	status, _ := doJSON(t, app, http.MethodGet, "/api/productos", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	for _, path := range []string{"/api/productos/activos", "/api/productos/ofertas", "/api/campanias/hoy"} {
		status, _ = doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, status, path)
	}

	_, raw := doJSON(t, app, http.MethodPost, "/api/login", `{"usuario":"eliseo","password":"1234"}`)
	token, _ := decode(t, raw)["token"].(string)
	require.NotEmpty(t, token)

	status, _ = doJSON(t, app, http.MethodGet, "/api/productos", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/campanias/hoy", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/campanias/hoy", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)
}
