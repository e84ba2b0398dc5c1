package handler

import (
	"tailorlink/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	tailorHandler      *TailorHandler
	reviewHandler      *ReviewHandler
	orderHandler       *OrderHandler
	measurementHandler *MeasurementHandler
	chatHandler        *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	tailorUseCase *usecase.TailorUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	orderUseCase *usecase.OrderUseCase,
	measurementUseCase *usecase.MeasurementUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	tailorHandler = NewTailorHandler(tailorUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	measurementHandler = NewMeasurementHandler(measurementUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetTailorHandler() *TailorHandler {
	return tailorHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetMeasurementHandler() *MeasurementHandler {
	return measurementHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
