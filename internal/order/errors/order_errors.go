package ordererrors

import (
	"net/http"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot checkout with an empty cart",
		http.StatusBadRequest,
	)

	ErrInvalidOrderer = apperror.New(
		apperror.CodeInvalidInput,
		"Orderer name and phone number are required",
		http.StatusBadRequest,
	)

	ErrInvalidPhoneNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Phone number must look like 010-1234-5678",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrAmountMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Payment amount does not match the order total",
		http.StatusBadRequest,
	)

	ErrOrderServiceUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Order service is unavailable",
		http.StatusBadGateway,
	)

	ErrOrderRejected = apperror.New(
		apperror.CodeUpstreamError,
		"Order service rejected the request",
		http.StatusBadGateway,
	)

	ErrCancelRejected = apperror.New(
		apperror.CodeUpstreamError,
		"Payment cancellation was rejected",
		http.StatusBadGateway,
	)
)
