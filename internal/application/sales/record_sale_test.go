package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
)

type fixture struct {
	store     *memory.Store
	products  *memory.ProductRepository
	customers *memory.CustomerRepository
	resellers *memory.ResellerRepository
	uc        *sales.RecordSaleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	return &fixture{
		store:     s,
		products:  memory.NewProductRepository(s),
		customers: memory.NewCustomerRepository(s),
		resellers: memory.NewResellerRepository(s),
		uc:        sales.NewRecordSaleUseCase(memory.NewTxRunner(s), zerolog.Nop()),
	}
}

func (f *fixture) product(t *testing.T, name string, price int64, stock int, promo entity.Promotion) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.NewFromInt(price), Stock: stock, Active: true, Promotion: promo}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func item(id int64, qty int) dto.SaleItemRequest {
	return dto.SaleItemRequest{ProductoID: dto.V(id), Cantidad: dto.V(qty)}
}

func TestRecordSale_TotalConOfertaYDescuentoDeStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(t, "A", 100, 10, entity.Promotion{})
	b := f.product(t, "B", 200, 5, entity.NewPromotion(entity.PromotionPercentage, decimal.NewFromInt(50), ""))

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item(a.ID, 2), item(b.ID, 1)}})
	require.NoError(t, err)
	assert.Equal(t, 300.0, out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 100.0, out.Items[1].PrecioUnitario)

	gotA, _ := f.products.GetByID(ctx, a.ID)
	gotB, _ := f.products.GetByID(ctx, b.ID)
	assert.Equal(t, 8, gotA.Stock)
	assert.Equal(t, 4, gotB.Stock)
}

func TestRecordSale_ProductoInexistenteSumaCero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(t, "A", 100, 10, entity.Promotion{})

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item(a.ID, 1), item(999, 3)}})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 0.0, out.Items[1].Subtotal)
}

func TestRecordSale_StockNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(t, "A", 100, 2, entity.Promotion{})

	_, err := f.uc.Execute(ctx, dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item(a.ID, 50)}})
	require.NoError(t, err)
	got, _ := f.products.GetByID(ctx, a.ID)
	assert.Equal(t, 0, got.Stock)
}

func TestRecordSale_TotalExplicitoGanaYComision(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(t, "A", 100, 10, entity.Promotion{})

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{
		Items:              []dto.SaleItemRequest{item(a.ID, 1)},
		Total:              dto.V("25"),
		ComisionPorcentaje: dto.V(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, out.Total)
	assert.Equal(t, 3.0, out.ComisionCalculada, "round(2.5) = 3")

	got, _ := f.products.GetByID(ctx, a.ID)
	assert.Equal(t, 9, got.Stock, "el total explícito no evita el descuento")
}

func TestRecordSale_FormaHeredada(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(t, "A", 150, 4, entity.Promotion{})

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{ProductoID: dto.V(a.ID), CantidadProducto: dto.V("2")})
	require.NoError(t, err)
	assert.Equal(t, 300.0, out.Total)
	require.NotNil(t, out.ProductoID)
	assert.Equal(t, a.ID, *out.ProductoID)
	assert.Equal(t, 2, out.CantidadProducto)

	got, _ := f.products.GetByID(ctx, a.ID)
	assert.Equal(t, 2, got.Stock)
}

func TestRecordSale_ClienteTextoCreaCliente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{ClienteTexto: "Doña Rosa", Total: dto.V(10)})
	require.NoError(t, err)
	require.NotNil(t, out.ClienteID)
	assert.Equal(t, "Doña Rosa", out.Cliente)

	c, err := f.customers.GetByID(ctx, *out.ClienteID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, entity.NotesCreatedFromSale, c.Notes)
}

func TestRecordSale_ClienteIDCopiaNombreActual(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := &entity.Customer{Name: "Marta"}
	require.NoError(t, f.customers.Create(ctx, c))

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{ClienteID: dto.V(c.ID), ClienteTexto: "otro"})
	require.NoError(t, err)
	assert.Equal(t, "Marta", out.Cliente)

	c.Name = "Marta G."
	require.NoError(t, f.customers.Update(ctx, c))
	list, _ := sales.NewQueryUseCase(memory.NewSaleRepository(f.store)).List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Marta", list[0].Cliente, "renombrar no cambia ventas pasadas")
}

func TestRecordSale_SinClienteNiRevendedor(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Execute(context.Background(), dto.CreateSaleRequest{})
	require.NoError(t, err)
	assert.Nil(t, out.ClienteID)
	assert.Equal(t, "", out.Cliente)
	assert.Nil(t, out.RevendedorID)
	assert.Equal(t, 0.0, out.Total)
	assert.Len(t, out.Fecha, len("2006-01-02"))
	assert.NotNil(t, out.Items)
}

func TestRecordSale_NombreDeRevendedorDesdeRegistro(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := &entity.Reseller{Name: "Ana", Active: true}
	require.NoError(t, f.resellers.Create(ctx, r))

	out, err := f.uc.Execute(ctx, dto.CreateSaleRequest{RevendedorID: dto.V(r.ID), Fecha: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.RevendedorNombre)
	assert.Equal(t, "2024-05-01", out.Fecha)
}

type failingDecrement struct {
	*memory.ProductRepository
}

func (failingDecrement) DecrementStock(context.Context, int64, int) (*entity.Product, error) {
	return nil, errors.New("disco lleno")
}

type runnerWithRepos struct {
	repos sales.TxRepos
}

func (r runnerWithRepos) RunInTx(_ context.Context, fn func(sales.TxRepos) error) error {
	return fn(r.repos)
}

func TestRecordSale_FallaDeStockNoAbortaLaVenta(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	products := memory.NewProductRepository(s)
	p := &entity.Product{Name: "A", Price: decimal.NewFromInt(100), Stock: 3}
	require.NoError(t, products.Create(ctx, p))

	uc := sales.NewRecordSaleUseCase(runnerWithRepos{repos: sales.TxRepos{
		Products:  failingDecrement{products},
		Customers: memory.NewCustomerRepository(s),
		Resellers: memory.NewResellerRepository(s),
		Sales:     memory.NewSaleRepository(s),
	}}, zerolog.Nop())

	out, err := uc.Execute(ctx, dto.CreateSaleRequest{Items: []dto.SaleItemRequest{item(p.ID, 1)}})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Total)
	assert.Equal(t, int64(1), out.ID)
}
