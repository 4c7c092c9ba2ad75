package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	prom "github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/prometheus"
)

// pathNode is one step of a rendered kinship path.
type pathNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func healthHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, _, _ := state.Snapshot()
		if idx == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"individuals": idx.IndividualCount(),
			"families":    idx.FamilyCount(),
		})
	}
}

func individualHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, _, _ := state.Snapshot()
		if idx == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record set not loaded"})
			return
		}
		ind, ok := idx.Individual(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "individual not found"})
			return
		}
		c.JSON(http.StatusOK, ind)
	}
}

func pathHandler(state *State, metrics *prom.Metrics) gin.HandlerFunc {
	countQuery := func(outcome string) {
		if metrics != nil {
			metrics.PathQueriesTotal.WithLabelValues(outcome).Inc()
		}
	}

	return func(c *gin.Context) {
		idx, graph, classifier := state.Snapshot()
		if graph == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record set not loaded"})
			return
		}
		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
			return
		}

		path, ok := graph.ShortestPath(from, to)
		if !ok {
			countQuery("not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "no path between the given individuals"})
			return
		}
		countQuery("found")

		nodes := make([]pathNode, 0, len(path))
		for _, id := range path {
			nodes = append(nodes, pathNode{ID: id, Name: idx.Name(id)})
		}
		c.JSON(http.StatusOK, gin.H{
			"from":     from,
			"to":       to,
			"distance": len(path) - 1,
			"path":     nodes,
			"rendered": classifier.RenderPath(path, nil),
		})
	}
}

func distancesHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, graph, _ := state.Snapshot()
		if graph == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record set not loaded"})
			return
		}
		from := c.Query("from")
		if from == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from query parameter is required"})
			return
		}
		if _, ok := idx.Individual(from); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "individual not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"from":      from,
			"distances": graph.Distances(from),
		})
	}
}
