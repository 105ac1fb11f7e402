package server

import (
	"net/http"

	"dri_index/pkg/httpx/reply"
	"dri_index/pkg/rest"
)

type HealthServer struct {
	chatConfigured  bool
	storeConfigured bool
}

func NewHealthServer(chatConfigured, storeConfigured bool) HealthServer {
	return HealthServer{
		chatConfigured:  chatConfigured,
		storeConfigured: storeConfigured,
	}
}

func (s HealthServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		OK:              true,
		ChatConfigured:  s.chatConfigured,
		StoreConfigured: s.storeConfigured,
	})

	return nil
}
