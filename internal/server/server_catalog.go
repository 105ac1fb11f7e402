package server

import (
	"net/http"

	"dri_index/internal/domain/service/catalog"
	"dri_index/pkg/httpx/reply"
	"dri_index/pkg/lox"
)

type CatalogServer struct {
	catalog *catalog.Catalog
}

func NewCatalogServer(cat *catalog.Catalog) CatalogServer {
	return CatalogServer{
		catalog: cat,
	}
}

func (s CatalogServer) getIndicators(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, lox.Map(s.catalog.Definitions(), newRESTIndicator))

	return nil
}
