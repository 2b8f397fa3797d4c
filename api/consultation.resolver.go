package api

import (
	"strconv"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/repository"
	"portfoliobook/internal/service"
	"portfoliobook/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type scheduleConsultationRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Company           string   `json:"company"`
	Role              string   `json:"role"`
	About             string   `json:"about"`
	Goals             string   `json:"goals"`
	PreferredDateTime string   `json:"preferredDateTime"`
	Timezone          string   `json:"timezone"`
	Source            string   `json:"source"`
	BookingType       string   `json:"bookingType"`
	Subscribed        *bool    `json:"subscribed"`
	Notify            []string `json:"notify"`
}

type consultationResponse struct {
	ID                int32   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Company           string  `json:"company"`
	Role              string  `json:"role"`
	About             string  `json:"about"`
	Goals             string  `json:"goals"`
	PreferredDateTime string  `json:"preferredDateTime"`
	Timezone          *string `json:"timezone"`
	ScheduledAt       *string `json:"scheduledAt"`
	MeetingLink       *string `json:"meetingLink"`
	Status            string  `json:"status"`
	Source            *string `json:"source"`
	Subscribed        bool    `json:"subscribed"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         *string `json:"updatedAt"`
}

func toConsultationResponse(c model.Consultation) consultationResponse {
	out := consultationResponse{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Company:           c.Company,
		Role:              c.Role,
		About:             c.About,
		Goals:             c.Goals,
		PreferredDateTime: c.PreferredDateTime,
		Timezone:          c.Timezone,
		ScheduledAt:       c.ScheduledAt,
		MeetingLink:       c.MeetingLink,
		Status:            c.Status,
		Source:            c.Source,
		Subscribed:        c.Subscribed,
		CreatedAt:         c.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = strPtr(c.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"))
	}
	return out
}

func (m ApiHandler) scheduleConsultation(c *gin.Context) {
	var requestBody scheduleConsultationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(apperr.Wrap(apperr.CodeValidation, "Invalid request body", err), c)
		return
	}

	response, err := m.IntakeService.Submit(c.Request.Context(), service.SubmitConsultationRequest{
		Name:              requestBody.Name,
		Email:             requestBody.Email,
		Phone:             requestBody.Phone,
		Company:           requestBody.Company,
		Role:              requestBody.Role,
		About:             requestBody.About,
		Goals:             requestBody.Goals,
		PreferredDateTime: requestBody.PreferredDateTime,
		Timezone:          requestBody.Timezone,
		Source:            requestBody.Source,
		BookingType:       requestBody.BookingType,
		Subscribed:        requestBody.Subscribed,
		Notify:            requestBody.Notify,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Consultation request submitted successfully",
		"data": gin.H{
			"id":                response.ID,
			"email":             response.Email,
			"status":            response.Status,
			"preferredDateTime": response.PreferredDateTime,
			"createdAt":         response.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		},
	})
}

func (m ApiHandler) getAllConsultations(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultListLimit)), 10, 64)
	if err != nil {
		returnErrorJson(apperr.New(apperr.CodeValidation, "Invalid limit"), c)
		return
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil {
		returnErrorJson(apperr.New(apperr.CodeValidation, "Invalid offset"), c)
		return
	}

	// Clamp before querying so the echoed pagination matches what the
	// query actually used.
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := m.ConsultationRepository.List(repository.ConsultationListFilter{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Limit:     limit,
		Offset:    offset,
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	data := make([]consultationResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toConsultationResponse(record))
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": offset+int64(len(records)) < total,
		},
	})
}

func (m ApiHandler) getConsultationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		returnErrorJson(apperr.New(apperr.CodeValidation, "Consultation ID is required"), c)
		return
	}

	record, err := m.ConsultationRepository.FindByID(int32(id))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": toConsultationResponse(*record)})
}

type updateConsultationStatusRequest struct {
	Status string `json:"status"`
}

func (m ApiHandler) updateConsultationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		returnErrorJson(apperr.New(apperr.CodeValidation, "ID and status are required"), c)
		return
	}

	var requestBody updateConsultationStatusRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil || requestBody.Status == "" {
		returnErrorJson(apperr.New(apperr.CodeValidation, "ID and status are required"), c)
		return
	}

	record, err := m.ConsultationRepository.UpdateStatus(int32(id), requestBody.Status)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Status updated successfully",
		"data":    toConsultationResponse(*record),
	})
}
