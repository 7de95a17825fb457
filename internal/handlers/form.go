// internal/handlers/form.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/greyhoundwelfare/licence-frontend/internal/models"
	"github.com/greyhoundwelfare/licence-frontend/internal/services"
	"github.com/greyhoundwelfare/licence-frontend/internal/utils"
	"github.com/greyhoundwelfare/licence-frontend/internal/wizard"
)

// Shown on the confirmation page when the stored reference cannot be read.
// The real reference is never written back from this fallback.
const fallbackReference = "HDJ2123F"

const genericLoadError = "There was a problem loading your application. Please try again later."

type FormHandler struct {
	forms  services.FormService
	logger *logrus.Logger
}

func NewFormHandler(forms services.FormService, logger *logrus.Logger) *FormHandler {
	return &FormHandler{
		forms:  forms,
		logger: logger,
	}
}

// GET /dashboard
func (h *FormHandler) Dashboard(c *gin.Context) {
	data := gin.H{
		"pageTitle": "Your saved forms",
		"heading":   "Your saved forms",
	}

	savedForms, err := h.forms.ListForms(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error loading saved forms for dashboard")
		data["savedForms"] = []models.Form{}
		data["error"] = "There was a problem loading your saved forms. Please try again later."
		c.HTML(http.StatusOK, "dashboard.html", data)
		return
	}

	data["savedForms"] = savedForms
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// GET /form/new
func (h *FormHandler) ShowNewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new-form.html", gin.H{
		"pageTitle": "Start a new application",
		"heading":   "Start a new application",
		"formName":  "",
	})
}

// POST /form/new
func (h *FormHandler) CreateForm(c *gin.Context) {
	payload := postPayload(c)

	data := gin.H{
		"pageTitle": "Start a new application",
		"heading":   "Start a new application",
		"formName":  payload["formName"],
	}

	req := &services.CreateFormRequest{FormName: strings.TrimSpace(payload["formName"])}
	if err := utils.ValidateStruct(req); err != nil {
		data["error"] = "Please enter an application name"
		c.HTML(http.StatusOK, "new-form.html", data)
		return
	}

	form, err := h.forms.CreateForm(c.Request.Context(), req)
	if err != nil {
		h.logger.WithError(err).Error("Error creating form")

		// Creation failures forward the backend's status where one exists.
		status := http.StatusInternalServerError
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		data["error"] = "There was a problem creating your application. Please try again."
		c.HTML(status, "new-form.html", data)
		return
	}

	if form == nil || form.ID == "" {
		h.logger.Error("Failed to create form - missing form ID")
		data["error"] = "There was a problem creating your application. Please try again."
		c.HTML(http.StatusOK, "new-form.html", data)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/form/%s/page/1", form.ID))
}

// GET /form/:formId/page/:pageNumber
func (h *FormHandler) ShowPage(c *gin.Context) {
	formID := c.Param("formId")
	pageNumber, err := strconv.Atoi(c.Param("pageNumber"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	// Out-of-range page numbers bounce to the dashboard without touching
	// the backend.
	page, ok := wizard.PageAt(pageNumber)
	if !ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.renderPageError(c, page, formID, pageNumber, err)
		return
	}
	if form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	data := h.pageLayout(page, formID, pageNumber)
	fillSectionDefaults(data, page)

	sectionData := wizard.SectionFields(form.Pages, page.Section.Path())
	for key, value := range sectionData {
		if value == nil {
			continue
		}
		data[key] = value
	}

	// Stored ISO dates are split back into day/month/year inputs.
	for _, group := range wizard.AllDateGroups() {
		iso, ok := sectionData[group].(string)
		if !ok || iso == "" {
			continue
		}
		parts := wizard.SplitDateString(iso)
		data[group+"Day"] = parts.Day
		data[group+"Month"] = parts.Month
		data[group+"Year"] = parts.Year
	}

	c.HTML(http.StatusOK, page.Template, data)
}

// POST /form/:formId/page/:pageNumber
func (h *FormHandler) SubmitPage(c *gin.Context) {
	formID := c.Param("formId")
	pageNumber, err := strconv.Atoi(c.Param("pageNumber"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	page, ok := wizard.PageAt(pageNumber)
	if !ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.renderPageError(c, page, formID, pageNumber, err)
		return
	}
	if form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	payload := postPayload(c)
	saveForLater := payload["saveForLater"] != ""
	delete(payload, "saveForLater")

	fields := reconcilePagePayload(page, payload)

	violations, err := wizard.ValidateSectionPayload(page.Section, fields)
	if err != nil {
		h.renderPageError(c, page, formID, pageNumber, err)
		return
	}
	if len(violations) > 0 {
		data := h.pageLayout(page, formID, pageNumber)
		fillSectionDefaults(data, page)
		for key, value := range payload {
			data[key] = value
		}
		data["error"] = "Please check your answers: " + strings.Join(violations, "; ")
		c.HTML(http.StatusOK, page.Template, data)
		return
	}

	updated := form.Clone()
	updated.Pages = wizard.MergeAtPath(updated.Pages, page.Section.Path(), fields)

	if _, err := h.forms.UpdateForm(c.Request.Context(), formID, updated); err != nil {
		h.renderPageError(c, page, formID, pageNumber, err)
		return
	}

	if saveForLater {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if pageNumber == wizard.PageCount() {
		c.Redirect(http.StatusFound, fmt.Sprintf("/form/%s/review", formID))
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/form/%s/page/%d", formID, pageNumber+1))
}

// GET /form/:formId/review
func (h *FormHandler) ShowReview(c *gin.Context) {
	formID := c.Param("formId")

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for review")
		c.HTML(http.StatusOK, "review.html", gin.H{
			"pageTitle": "Review your application",
			"heading":   "Review your application",
			"formId":    formID,
			"sections":  []reviewSection{},
			"error":     genericLoadError,
		})
		return
	}
	if form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "review.html", gin.H{
		"pageTitle": "Review your application",
		"heading":   "Review your application",
		"formId":    formID,
		"sections":  buildReviewSections(form),
	})
}

// POST /form/:formId/review
func (h *FormHandler) SubmitReview(c *gin.Context) {
	formID := c.Param("formId")

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err == nil && form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	payload := postPayload(c)
	if payload["saveForLater"] != "" {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for submission")
		c.HTML(http.StatusOK, "review.html", gin.H{
			"pageTitle": "Review your application",
			"heading":   "Review your application",
			"formId":    formID,
			"sections":  []reviewSection{},
			"error":     genericLoadError,
		})
		return
	}

	if _, err := h.forms.SubmitForm(c.Request.Context(), formID); err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error submitting form")
		c.HTML(http.StatusOK, "review.html", gin.H{
			"pageTitle": "Review your application",
			"heading":   "Review your application",
			"formId":    formID,
			"sections":  buildReviewSections(form),
			"error":     "There was a problem submitting your application. Please try again later.",
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/form/%s/confirmation", formID))
}

// GET /form/:formId/confirmation
func (h *FormHandler) Confirmation(c *gin.Context) {
	formID := c.Param("formId")

	data := gin.H{
		"pageTitle": "Application complete",
		"heading":   "Application complete",
		"formId":    formID,
	}

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for confirmation")
		data["referenceNumber"] = fallbackReference
		c.HTML(http.StatusOK, "confirmation.html", data)
		return
	}
	if form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	reference := form.ReferenceNumber
	if reference == "" {
		reference = fallbackReference
	}
	data["referenceNumber"] = reference
	c.HTML(http.StatusOK, "confirmation.html", data)
}

// POST /form/:formId/save
func (h *FormHandler) SaveForLater(c *gin.Context) {
	formID := c.Param("formId")

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for save")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if form == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	payload := postPayload(c)

	// The posting page identifies itself; without it the payload is treated
	// as page 1 data.
	pageNumber := 1
	if n, err := strconv.Atoi(payload["currentPage"]); err == nil {
		pageNumber = n
	}
	delete(payload, "currentPage")
	delete(payload, "saveForLater")

	page, ok := wizard.PageAt(pageNumber)
	if !ok {
		page, _ = wizard.PageAt(1)
	}

	fields := reconcilePagePayload(page, payload)

	violations, err := wizard.ValidateSectionPayload(page.Section, fields)
	if err != nil || len(violations) > 0 {
		h.logger.WithFields(logrus.Fields{
			"formId":     formID,
			"page":       page.ID,
			"violations": violations,
		}).Warn("Discarding invalid save-for-later payload")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	updated := form.Clone()
	updated.Pages = wizard.MergeAtPath(updated.Pages, page.Section.Path(), fields)

	if _, err := h.forms.UpdateForm(c.Request.Context(), formID, updated); err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
			"page":   page.ID,
		}).WithError(err).Error("Error saving form for later")
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /form/:formId/delete
func (h *FormHandler) ShowDelete(c *gin.Context) {
	formID := c.Param("formId")

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for delete confirmation")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if form == nil || form.IsSubmitted() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "delete-confirm.html", gin.H{
		"pageTitle": "Delete application",
		"heading":   "Delete application",
		"formId":    formID,
		"formName":  form.FormName,
	})
}

// POST /form/:formId/delete
func (h *FormHandler) DeleteForm(c *gin.Context) {
	formID := c.Param("formId")

	form, err := h.forms.GetForm(c.Request.Context(), formID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error loading form for deletion")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	// Submitted applications cannot be deleted.
	if form == nil || form.IsSubmitted() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := h.forms.DeleteForm(c.Request.Context(), formID); err != nil {
		h.logger.WithFields(logrus.Fields{
			"formId": formID,
		}).WithError(err).Error("Error deleting form")
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// POST /form — generic submit, the one flow with a dedicated error template.
func (h *FormHandler) ProcessForm(c *gin.Context) {
	payload := postPayload(c)

	result, err := h.forms.ProcessForm(c.Request.Context(), payload)
	if err != nil {
		h.logger.WithError(err).Error("Error processing form")
		c.HTML(http.StatusOK, "error.html", gin.H{
			"pageTitle": "Error",
			"heading":   "Something went wrong",
			"error":     "There was a problem processing your form. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"pageTitle": "Form submitted",
		"heading":   "Form submitted successfully",
		"result":    result,
	})
}

func (h *FormHandler) pageLayout(page wizard.Page, formID string, pageNumber int) gin.H {
	backLink := "/dashboard"
	if pageNumber > 1 {
		backLink = fmt.Sprintf("/form/%s/page/%d", formID, pageNumber-1)
	}
	return gin.H{
		"pageTitle":   page.Title,
		"heading":     page.Title,
		"formId":      formID,
		"currentPage": pageNumber,
		"totalPages":  wizard.PageCount(),
		"backLink":    backLink,
	}
}

// renderPageError keeps the user on the wizard with a generic message; the
// technical detail goes to the log only.
func (h *FormHandler) renderPageError(c *gin.Context, page wizard.Page, formID string, pageNumber int, err error) {
	h.logger.WithFields(logrus.Fields{
		"formId": formID,
		"page":   pageNumber,
	}).WithError(err).Error("Error in form page controller")

	data := h.pageLayout(page, formID, pageNumber)
	fillSectionDefaults(data, page)
	data["error"] = genericLoadError
	c.HTML(http.StatusOK, page.Template, data)
}

// reconcilePagePayload resolves this page's date groups to ISO-or-null,
// strips the raw component keys and lifts the rest of the payload into
// document fields. Groups with no component in the payload are skipped so a
// page that never showed the field cannot clear it.
func reconcilePagePayload(page wizard.Page, payload map[string]string) map[string]any {
	fields := make(map[string]any, len(payload))
	for _, group := range page.DateGroups {
		if !wizard.HasDateFields(payload, group) {
			continue
		}
		iso, ok := wizard.CombineDateFields(payload, group)
		wizard.StripDateFields(payload, group)
		if ok {
			fields[group] = iso
		} else {
			fields[group] = nil
		}
	}
	for key, value := range payload {
		fields[key] = value
	}
	return fields
}

func fillSectionDefaults(data gin.H, page wizard.Page) {
	for _, name := range wizard.SectionFieldNames(page.Section) {
		data[name] = ""
	}
	for _, group := range page.DateGroups {
		data[group+"Day"] = ""
		data[group+"Month"] = ""
		data[group+"Year"] = ""
	}
}

func postPayload(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()
	payload := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}
	return payload
}

type reviewField struct {
	Name  string
	Value any
}

type reviewSection struct {
	Title  string
	Fields []reviewField
}

func buildReviewSections(form *models.Form) []reviewSection {
	var sections []reviewSection
	seen := map[wizard.SectionID]bool{}

	for _, page := range wizard.Pages() {
		if seen[page.Section] {
			continue
		}
		seen[page.Section] = true

		fields := wizard.SectionFields(form.Pages, page.Section.Path())
		section := reviewSection{Title: page.Title}
		for _, name := range wizard.SectionFieldNames(page.Section) {
			value, ok := fields[name]
			if !ok || value == nil {
				continue
			}
			section.Fields = append(section.Fields, reviewField{Name: name, Value: value})
		}
		sections = append(sections, section)
	}
	return sections
}
