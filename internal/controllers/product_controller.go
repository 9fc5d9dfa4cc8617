package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utah_trips/internal/config"
	"utah_trips/internal/models"
)

// CreateProduct adds an affiliate product; defaults InStock to true
func CreateProduct(c *gin.Context) {
	var input struct {
		Name          string `json:"name" binding:"required"`
		Vendor        string `json:"vendor"`
		URL           string `json:"url" binding:"required"`
		PriceCents    int    `json:"price_cents"`
		DestinationID uint   `json:"destination_id"`
		// InStock omitted: always default true on creation
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product input: " + err.Error()})
		return
	}

	product := models.Product{
		Name:          input.Name,
		Vendor:        input.Vendor,
		URL:           input.URL,
		PriceCents:    input.PriceCents,
		DestinationID: input.DestinationID,
		InStock:       true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// ListProducts returns the full affiliate catalog.
func ListProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing products: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// ListProductsForDestination returns in-stock products tied to a destination.
func ListProductsForDestination(c *gin.Context) {
	dest, ok := findDestination(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Where("destination_id = ? AND in_stock = ?", dest.ID, true).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct retrieves a product by ID.
func GetProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct modifies an existing product.
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input struct {
		Name          *string `json:"name"`
		Vendor        *string `json:"vendor"`
		URL           *string `json:"url"`
		PriceCents    *int    `json:"price_cents"`
		DestinationID *uint   `json:"destination_id"`
		InStock       *bool   `json:"in_stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Vendor != nil {
		product.Vendor = *input.Vendor
	}
	if input.URL != nil {
		product.URL = *input.URL
	}
	if input.PriceCents != nil {
		product.PriceCents = *input.PriceCents
	}
	if input.DestinationID != nil {
		product.DestinationID = *input.DestinationID
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	config.DB.Save(&product)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product by ID.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	config.DB.Delete(&product)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
