// Package api exposes the HTTP surface of the service: document CRUD,
// sharing, PDF export, email delivery and whole-state backup.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/config"
	"github.com/kirim-labs/invoice-service/internal/email"
	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/services"
	"github.com/kirim-labs/invoice-service/internal/sharing"
)

// API wires the HTTP handlers to the services.
type API struct {
	documents *services.DocumentService
	profiles  *services.ProfileService
	pdf       *services.PDFGenerator
	email     *email.ResendService
	cfg       *config.Config
	logger    *logrus.Logger
}

// NewAPI creates the handler set. emailService may be nil when no API
// key is configured; the email endpoint then reports unavailable.
func NewAPI(
	documents *services.DocumentService,
	profiles *services.ProfileService,
	pdf *services.PDFGenerator,
	emailService *email.ResendService,
	cfg *config.Config,
	logger *logrus.Logger,
) *API {
	return &API{
		documents: documents,
		profiles:  profiles,
		pdf:       pdf,
		email:     emailService,
		cfg:       cfg,
		logger:    logger,
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", a.health)

	v1 := router.Group("/v1")
	{
		v1.POST("/documents", a.createDocument)
		v1.GET("/documents", a.listDocuments)
		v1.GET("/documents/:id", a.getDocument)
		v1.PUT("/documents/:id", a.updateDocument)
		v1.DELETE("/documents/:id", a.deleteDocument)
		v1.POST("/documents/:id/duplicate", a.duplicateDocument)
		v1.POST("/documents/:id/convert", a.convertDocument)
		v1.GET("/documents/:id/pdf", a.documentPDF)
		v1.GET("/documents/:id/share", a.shareDocument)
		v1.POST("/documents/:id/email", a.emailDocument)

		v1.GET("/view", a.viewShared)

		v1.GET("/profile", a.getProfile)
		v1.PUT("/profile", a.saveProfile)

		v1.GET("/customers", a.listCustomers)
		v1.PUT("/customers", a.saveCustomer)

		v1.GET("/dashboard", a.dashboard)

		v1.GET("/state/export", a.exportState)
		v1.POST("/state/import", a.importState)
	}
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "invoice-service"})
}

func (a *API) createDocument(c *gin.Context) {
	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "type", Issue: "must be invoice or quotation"},
		}))
		return
	}

	doc, err := a.documents.Create(req.Type)
	if err != nil {
		a.internalError(c, err, "Error creating document")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) listDocuments(c *gin.Context) {
	docs, err := a.documents.List()
	if err != nil {
		a.internalError(c, err, "Error listing documents")
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "total": len(docs)})
}

func (a *API) getDocument(c *gin.Context) {
	doc, err := a.documents.Get(c.Param("id"))
	if err != nil {
		a.documentError(c, err, "Error getting document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) updateDocument(c *gin.Context) {
	var req models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", nil))
		return
	}

	doc, err := a.documents.Update(c.Param("id"), &req)
	if err != nil {
		a.documentError(c, err, "Error updating document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) deleteDocument(c *gin.Context) {
	if err := a.documents.Delete(c.Param("id")); err != nil {
		a.documentError(c, err, "Error deleting document")
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) duplicateDocument(c *gin.Context) {
	doc, err := a.documents.Duplicate(c.Param("id"))
	if err != nil {
		a.documentError(c, err, "Error duplicating document")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) convertDocument(c *gin.Context) {
	doc, err := a.documents.Convert(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Document not found"))
			return
		}
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeInvalidRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (a *API) documentPDF(c *gin.Context) {
	doc, err := a.documents.Get(c.Param("id"))
	if err != nil {
		a.documentError(c, err, "Error getting document")
		return
	}
	profile, err := a.profiles.GetProfile()
	if err != nil {
		a.internalError(c, err, "Error loading profile")
		return
	}

	pdfBytes, err := a.pdf.GeneratePDF(doc, profile)
	if err != nil {
		a.internalError(c, err, "Error generating PDF")
		return
	}

	filename := fmt.Sprintf("%s.pdf", doc.Number)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (a *API) shareDocument(c *gin.Context) {
	doc, err := a.documents.Get(c.Param("id"))
	if err != nil {
		a.documentError(c, err, "Error getting document")
		return
	}

	baseURL := a.cfg.Server.BaseURL
	shareLink, err := sharing.ShareLink(doc, baseURL)
	if err != nil {
		a.internalError(c, err, "Error building share link")
		return
	}
	waURL, err := sharing.WhatsAppLink(doc, baseURL)
	if err != nil {
		a.internalError(c, err, "Error building whatsapp link")
		return
	}
	mailtoURL, err := sharing.MailtoLink(doc, baseURL)
	if err != nil {
		a.internalError(c, err, "Error building mailto link")
		return
	}

	c.JSON(http.StatusOK, models.ShareResponse{
		ShareLink:   shareLink,
		WhatsAppURL: waURL,
		MailtoURL:   mailtoURL,
	})
}

func (a *API) emailDocument(c *gin.Context) {
	if a.email == nil {
		c.JSON(http.StatusServiceUnavailable, models.NewUnavailableError("Email delivery is not configured"))
		return
	}

	doc, err := a.documents.Get(c.Param("id"))
	if err != nil {
		a.documentError(c, err, "Error getting document")
		return
	}
	profile, err := a.profiles.GetProfile()
	if err != nil {
		a.internalError(c, err, "Error loading profile")
		return
	}

	if doc.Customer.Email == "" {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Customer has no email address", []models.ErrorDetail{
			{Field: "customer.email", Issue: "required to send email"},
		}))
		return
	}

	if _, err := a.email.SendDocument(doc, profile); err != nil {
		a.internalError(c, err, "Error sending email")
		return
	}
	c.JSON(http.StatusOK, models.EmailSendResponse{Status: "sent"})
}

// viewShared decodes a self-contained share payload. The document is
// rebuilt entirely from the query string; nothing is read from storage.
func (a *API) viewShared(c *gin.Context) {
	payload := c.Query("data")
	if payload == "" {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Missing data parameter", []models.ErrorDetail{
			{Field: "data", Issue: "required"},
		}))
		return
	}

	doc, err := sharing.Decode(payload)
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewNotFoundError("Document not found"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) getProfile(c *gin.Context) {
	profile, err := a.profiles.GetProfile()
	if err != nil {
		a.internalError(c, err, "Error loading profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) saveProfile(c *gin.Context) {
	var profile models.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", nil))
		return
	}
	if err := a.profiles.SaveProfile(&profile); err != nil {
		a.internalError(c, err, "Error saving profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) listCustomers(c *gin.Context) {
	customers, err := a.profiles.ListCustomers()
	if err != nil {
		a.internalError(c, err, "Error listing customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "total": len(customers)})
}

func (a *API) saveCustomer(c *gin.Context) {
	var customer models.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", nil))
		return
	}
	saved, err := a.profiles.SaveCustomer(&customer)
	if err != nil {
		a.internalError(c, err, "Error saving customer")
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (a *API) dashboard(c *gin.Context) {
	stats, err := a.profiles.Dashboard()
	if err != nil {
		a.internalError(c, err, "Error building dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *API) exportState(c *gin.Context) {
	data, err := a.profiles.ExportState()
	if err != nil {
		a.internalError(c, err, "Error exporting state")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoice-app-data.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (a *API) importState(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Unreadable request body", nil))
		return
	}
	if err := a.profiles.ImportState(data); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid state payload", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}

func (a *API) documentError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, services.ErrDocumentNotFound) {
		c.JSON(http.StatusNotFound, models.NewNotFoundError("Document not found"))
		return
	}
	a.internalError(c, err, logMsg)
}

func (a *API) internalError(c *gin.Context, err error, logMsg string) {
	a.logger.WithError(err).Error(logMsg)
	c.JSON(http.StatusInternalServerError, models.NewInternalError("Internal server error"))
}
