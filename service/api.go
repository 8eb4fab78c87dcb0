package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genpdf/logging"
)

// Router exposes the batch rendering service over HTTP: poll a job's
// result and check liveness. Jobs are submitted through SubmitDocument,
// a Go method, not an HTTP route.
type Router struct {
	pool   *Pool
	logger logging.Logger
}

func NewRouter(pool *Pool, logger logging.Logger) *Router {
	return &Router{pool: pool, logger: logger}
}

func (r *Router) Register(engine *gin.Engine) {
	engine.GET("/healthz", r.health)
	engine.GET("/jobs/:id", r.getResult)
}

func (r *Router) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (r *Router) getResult(c *gin.Context) {
	id := c.Param("id")
	result, ok := r.pool.Result(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found or still pending"})
		return
	}
	if result.Err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": result.Err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// SubmitDocument enqueues a pre-built document and returns its job ID.
// Building documents happens in Go (the engine has no serialized job
// format), so this is called directly rather than exposed as a request
// body; an HTTP-facing caller would construct the Document first and
// hand it to this method from within their own handler.
func (r *Router) SubmitDocument(job Job) (string, error) {
	return r.pool.Submit(job)
}
