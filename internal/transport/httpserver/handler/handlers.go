package handler

import (
	memberdomain "gym-membership-go/internal/domain/member"
	"gym-membership-go/pkg/logger"
)

type Handlers struct {
	Members *memberdomain.Service
	log     logger.Logger
}

func New(members *memberdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Members: members,
		log:     log,
	}
}
