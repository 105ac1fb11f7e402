// Package server wires the entity-specific HTTP servers into one router.
package server

type Server struct {
	CompanyServer
	CatalogServer
	ChatServer
	FeedbackServer
	BadgeServer
	HealthServer
}

func NewServer(
	companyServer CompanyServer,
	catalogServer CatalogServer,
	chatServer ChatServer,
	feedbackServer FeedbackServer,
	badgeServer BadgeServer,
	healthServer HealthServer,
) Server {
	return Server{
		CompanyServer:  companyServer,
		CatalogServer:  catalogServer,
		ChatServer:     chatServer,
		FeedbackServer: feedbackServer,
		BadgeServer:    badgeServer,
		HealthServer:   healthServer,
	}
}
