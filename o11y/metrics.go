package o11y

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_page_views_total",
		Help: "Page views by view name.",
	}, []string{"page"})

	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "site_comments_created_total",
		Help: "Article comments accepted.",
	})
)
