package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/discool/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// The backend is inconsistent about id keys (id, idProduto, idEndereco...) and about
// whether ids and numbers are JSON strings or numbers. Records are decoded leniently here
// and converted to models exactly once.

type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))

	if raw == "" || raw == "null" {
		*f = ""
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*f = flexID(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}

	*f = flexID(n.String())

	return nil
}

func firstID(ids ...flexID) string {
	for _, id := range ids {
		if id != "" {
			return string(id)
		}
	}

	return ""
}

// money renders a decimal as a bare JSON number with cents precision.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type categoryRecord struct {
	ID          flexID `json:"id"`
	IDCategoria flexID `json:"idCategoria"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao"`
}

func (r categoryRecord) toModel() models.Category {
	return models.Category{ID: firstID(r.ID, r.IDCategoria), Name: r.Nome, Description: r.Descricao}
}

type productRecord struct {
	ID          flexID          `json:"id"`
	IDProduto   flexID          `json:"idProduto"`
	Nome        string          `json:"nome"`
	Artista     string          `json:"artista"`
	Descricao   string          `json:"descricao"`
	Preco       decimal.Decimal `json:"preco"`
	Estoque     int             `json:"estoque"`
	Reservado   *int            `json:"reservado"`
	ImagemURL   string          `json:"imagemUrl"`
	Imagem      string          `json:"imagem"`
	CategoriaID flexID          `json:"categoriaId"`
	Categoria   *categoryRecord `json:"categoria"`
}

func (r productRecord) toModel() models.Product {
	p := models.Product{
		ID:          firstID(r.ID, r.IDProduto),
		Name:        r.Nome,
		Artist:      r.Artista,
		Description: r.Descricao,
		Price:       r.Preco,
		Stock:       r.Estoque,
		Reserved:    r.Reservado,
		ImageURL:    r.ImagemURL,
		CategoryID:  string(r.CategoriaID),
	}

	if p.ImageURL == "" {
		p.ImageURL = r.Imagem
	}

	if r.Categoria != nil {
		c := r.Categoria.toModel()
		p.Category = &c

		if p.CategoryID == "" {
			p.CategoryID = c.ID
		}
	}

	return p
}

type addressRecord struct {
	ID          flexID  `json:"id"`
	IDEndereco  flexID  `json:"idEndereco"`
	Rua         string  `json:"rua"`
	Logradouro  string  `json:"logradouro"`
	Numero      flexID  `json:"numero"`
	Bairro      string  `json:"bairro"`
	Cidade      string  `json:"cidade"`
	Estado      string  `json:"estado"`
	CEP         flexID  `json:"cep"`
	Complemento *string `json:"complemento"`
	Padrao      bool    `json:"padrao"`
}

func (r addressRecord) toModel() models.Address {
	a := models.Address{
		ID:           firstID(r.ID, r.IDEndereco),
		Street:       r.Rua,
		Number:       string(r.Numero),
		Neighborhood: r.Bairro,
		City:         r.Cidade,
		State:        r.Estado,
		Zip:          string(r.CEP),
		IsDefault:    r.Padrao,
	}

	if a.Street == "" {
		a.Street = r.Logradouro
	}

	if r.Complemento != nil {
		a.Complement = *r.Complemento
	}

	return a
}

type itemRecord struct {
	ProdutoID     flexID          `json:"produtoId"`
	Nome          string          `json:"nome,omitempty"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
}

func (r itemRecord) toModel() models.OrderItem {
	return models.OrderItem{
		ProductID: string(r.ProdutoID),
		Name:      r.Nome,
		Quantity:  r.Quantidade,
		UnitPrice: r.PrecoUnitario,
	}
}

type itemPayload struct {
	ProdutoID     string      `json:"produtoId"`
	Quantidade    int         `json:"quantidade"`
	PrecoUnitario json.Number `json:"precoUnitario"`
}

func itemPayloads(items []models.OrderItem) []itemPayload {
	payload := make([]itemPayload, 0, len(items))

	for _, item := range items {
		payload = append(payload, itemPayload{
			ProdutoID:     item.ProductID,
			Quantidade:    item.Quantity,
			PrecoUnitario: money(item.UnitPrice),
		})
	}

	return payload
}

type cartRecord struct {
	ID         flexID       `json:"id"`
	IDCarrinho flexID       `json:"idCarrinho"`
	ClienteID  flexID       `json:"clienteId"`
	Itens      []itemRecord `json:"itens"`
}

func (r cartRecord) toModel() models.BackendCart {
	c := models.BackendCart{ID: firstID(r.ID, r.IDCarrinho), CustomerID: string(r.ClienteID)}

	for _, item := range r.Itens {
		c.Items = append(c.Items, item.toModel())
	}

	return c
}

type orderRecord struct {
	ID         flexID              `json:"id"`
	IDPedido   flexID              `json:"idPedido"`
	ClienteID  flexID              `json:"clienteId"`
	EnderecoID flexID              `json:"enderecoId"`
	ValorTotal decimal.NullDecimal `json:"valorTotal"`
	Total      decimal.NullDecimal `json:"total"`
	Status     string              `json:"status"`
	Descricao  string              `json:"descricao"`
	Data       string              `json:"data"`
	Itens      []itemRecord        `json:"itens"`
}

func (r orderRecord) toModel() models.Order {
	o := models.Order{
		ID:          firstID(r.ID, r.IDPedido),
		CustomerID:  string(r.ClienteID),
		AddressID:   string(r.EnderecoID),
		Total:       r.ValorTotal,
		Status:      models.OrderStatus(strings.ToUpper(r.Status)),
		Description: r.Descricao,
	}

	if !o.Total.Valid {
		o.Total = r.Total
	}

	if t, err := time.Parse(time.RFC3339, r.Data); err == nil {
		o.CreatedAt = t
	}

	for _, item := range r.Itens {
		o.Items = append(o.Items, item.toModel())
	}

	return o
}

type paymentRecord struct {
	ID          flexID          `json:"id"`
	IDPagamento flexID          `json:"idPagamento"`
	PedidoID    flexID          `json:"pedidoId"`
	Metodo      string          `json:"metodo"`
	Valor       decimal.Decimal `json:"valor"`
	Status      string          `json:"status"`
	Referencia  string          `json:"referenciaExterna"`
}

func (r paymentRecord) toModel() models.Payment {
	return models.Payment{
		ID:          firstID(r.ID, r.IDPagamento),
		OrderID:     string(r.PedidoID),
		Method:      r.Metodo,
		Amount:      r.Valor,
		Status:      models.PaymentStatus(strings.ToUpper(r.Status)),
		ProviderRef: r.Referencia,
	}
}

type customerRecord struct {
	ID        flexID `json:"id"`
	IDCliente flexID `json:"idCliente"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Tipo      string `json:"tipo"`
}

func (r customerRecord) toModel() models.Customer {
	c := models.Customer{ID: firstID(r.ID, r.IDCliente), Name: r.Nome, Email: r.Email, Role: r.Role}

	if c.Role == "" {
		c.Role = r.Tipo
	}

	return c
}
