// Package catalog serves the static product-catalog pages: an overview of
// product cards, a detail page per product and the raw data as JSON. Data
// and templates are embedded and parsed once at startup.
package catalog

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed data/products.json
var productData []byte

// Product segue o formato do data.json do catálogo.
type Product struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName"`
	Image       string `json:"image"`
	From        string `json:"from"`
	Nutrients   string `json:"nutrients"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Organic     bool   `json:"organic"`
	Description string `json:"description"`
}

// Slug é o nome do produto em minúsculas com hífens, usado nas URLs.
func (p Product) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.ProductName), " ", "-")
}

type Server struct {
	products []Product
	tmpl     *template.Template
}

func NewServer() (*Server, error) {
	var products []Product
	if err := json.Unmarshal(productData, &products); err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{products: products, tmpl: tmpl}, nil
}

// Mount registers the catalog routes on the engine root.
func Mount(r *gin.Engine) {
	srv, err := NewServer()
	if err != nil {
		// dados e templates são embutidos: falha aqui é erro de build
		panic(err)
	}
	srv.Register(r)
}

func (s *Server) Register(r *gin.Engine) {
	r.GET("/", s.Overview)
	r.GET("/overview", s.Overview)
	r.GET("/product/:id", s.ProductPage)
	r.GET("/catalog/api", s.API)
}

func (s *Server) Overview(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.tmpl.ExecuteTemplate(c.Writer, "overview.html", gin.H{"Products": s.products}); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (s *Server) ProductPage(c *gin.Context) {
	product, ok := s.find(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "This page could not be found")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.tmpl.ExecuteTemplate(c.Writer, "product.html", product); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (s *Server) API(c *gin.Context) {
	c.JSON(http.StatusOK, s.products)
}

func (s *Server) find(idOrSlug string) (Product, bool) {
	for _, p := range s.products {
		if idOrSlug == p.Slug() {
			return p, true
		}
	}
	// também aceita o índice numérico, como o projeto original (?id=n)
	for i, p := range s.products {
		if idOrSlug == strconv.Itoa(i) {
			return p, true
		}
	}
	return Product{}, false
}
