package main

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"lookupSheet/contracts"
	"net/http"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	requestDecoder    sonic.API
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required,uuid"`
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required,uuid"`
	Column  string `uri:"column" binding:"required"`
	Row     int    `uri:"row" binding:"min=0"`
}

type SetCellRequest struct {
	Value any `json:"value"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"omitempty,url"`
}

var requestBodyError = errors.New("invalid request body")

var notFoundErrors = []error{
	contracts.SheetNotFoundError,
	contracts.UnknownColumnError,
	contracts.UnknownRowError,
}

var validationErrors = []error{
	requestBodyError,
	contracts.InvalidValueError,
	contracts.InvalidRowError,
	contracts.DuplicateColumnError,
	contracts.UnsupportedColumnTypeError,
	contracts.TypeMismatchError,
	contracts.MalformedFormulaError,
	contracts.MissingColumnError,
	contracts.MissingValueError,
	contracts.SelfReferenceError,
	contracts.UnsupportedReferenceColumnTypeError,
	contracts.CyclicReferenceError,
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
		// numbers keep their written form so 10 and 10.0 reach the sheet as int and float
		requestDecoder: sonic.Config{UseNumber: true}.Froze(),
	}
}

func (api *ApiController) CreateSheetAction(c *gin.Context) {
	schema := contracts.Schema{}

	err := c.ShouldBindJSON(&schema)
	if err != nil {
		err = fmt.Errorf("%w: %w", requestBodyError, err)
	}

	var sheetId string
	if err == nil {
		sheetId, err = api.SheetRepository.CreateSheet(schema)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, gin.H{"id": sheetId})
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetRecord

	err := api.bindUri(c, &params)
	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetResolvedSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response contracts.SheetData

	err := api.bindUri(c, &params)
	if err == nil {
		response, err = api.SheetRepository.GetResolvedSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ReplaceSchemaAction(c *gin.Context) {
	params := SheetEndpointParams{}
	schema := contracts.Schema{}

	err := api.bindUri(c, &params)
	if err == nil {
		if err = c.ShouldBindJSON(&schema); err != nil {
			err = fmt.Errorf("%w: %w", requestBodyError, err)
		}
	}

	if err == nil {
		err = api.SheetRepository.ReplaceSchema(params.SheetId, schema)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"id": params.SheetId, "schema": schema})
	}
}

func (api *ApiController) ExportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	buffer := &bytes.Buffer{}

	err := api.bindUri(c, &params)
	if err == nil {
		err = api.SheetRepository.ExportSheet(params.SheetId, buffer)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="sheet-%s.xlsx"`, params.SheetId))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell
	var value contracts.Value

	err := api.bindUri(c, &params)
	if err == nil {
		value, err = api.bindValue(c)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.SheetId, params.Column, params.Row, value)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := api.bindUri(c, &params)
	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.Column, params.Row)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := SubscribeRequest{}

	err := api.bindUri(c, &params)
	if err == nil {
		if err = c.ShouldBindJSON(&request); err != nil {
			err = fmt.Errorf("%w: %w", requestBodyError, err)
		}
	}

	// subscribing requires an existing sheet
	if err == nil {
		_, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.SheetId, request.WebhookUrl)
	c.JSON(http.StatusOK, gin.H{"sheet_id": params.SheetId, "webhook_url": request.WebhookUrl})
}

func (api *ApiController) bindUri(c *gin.Context, params any) error {
	if err := c.ShouldBindUri(params); err != nil {
		return fmt.Errorf("%w: %w", requestBodyError, err)
	}

	return nil
}

func (api *ApiController) bindValue(c *gin.Context) (contracts.Value, error) {
	body, err := c.GetRawData()
	if err != nil {
		return contracts.Value{}, fmt.Errorf("%w: %w", requestBodyError, err)
	}

	request := SetCellRequest{}
	if err = api.requestDecoder.Unmarshal(body, &request); err != nil {
		return contracts.Value{}, fmt.Errorf("%w: %w", requestBodyError, err)
	}

	return contracts.ValueOf(request.Value)
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if isAnyError(err, notFoundErrors) {
		status = http.StatusNotFound
	} else if isAnyError(err, validationErrors) {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func isAnyError(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
