package calculator

import (
	"errors"
	"net/http"
	"strconv"

	core "calc-api/internal/calculator/core"
	errs "calc-api/internal/calculator/errs"
	types "calc-api/internal/calculator/types"
	logger "calc-api/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	Engine *gin.Engine
}

func NewServer() *Server {
	engine := gin.Default()

	// teaching deployment: any origin may call the API
	engine.Use(cors.Default())

	server := &Server{Engine: engine}

	engine.GET("/", rootHandler())
	engine.GET("/health", healthHandler())
	engine.GET("/calc", calcQueryHandler())
	engine.POST("/calc/:op", calcBodyHandler())
	for _, op := range core.Operators {
		engine.POST("/"+string(op), shortcutHandler(op))
	}

	return server
}

func (s *Server) Run(port string) error {
	return s.Engine.Run(port)
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "two-number arithmetic API",
			"try": []string{
				"/health",
				"/calc?op=add&a=3&b=5",
				"POST /calc/mul {\"a\":2.5,\"b\":4}",
				"POST /add | /sub | /mul | /div",
			},
		})
	}
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func calcQueryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		op, err := core.ParseOperator(c.Query("op"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unsupported operator"})
			logger.Error("unsupported operator", zap.String("op", c.Query("op")))
			return
		}

		a, err := strconv.ParseFloat(c.Query("a"), 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "operand a is not a number"})
			logger.Error("invalid operand a", zap.String("a", c.Query("a")))
			return
		}

		b, err := strconv.ParseFloat(c.Query("b"), 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "operand b is not a number"})
			logger.Error("invalid operand b", zap.String("b", c.Query("b")))
			return
		}

		respondResult(c, a, b, op)
	}
}

func calcBodyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		op, err := core.ParseOperator(c.Param("op"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unsupported operator"})
			logger.Error("unsupported operator", zap.String("op", c.Param("op")))
			return
		}

		bindOperands(c, op)
	}
}

func shortcutHandler(op core.Operator) gin.HandlerFunc {
	return func(c *gin.Context) {
		bindOperands(c, op)
	}
}

func bindOperands(c *gin.Context, op core.Operator) {
	var req types.Operands

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		logger.Error("invalid request body", zap.Error(err))
		return
	}

	respondResult(c, *req.A, *req.B, op)
}

func respondResult(c *gin.Context, a, b float64, op core.Operator) {
	result, err := core.Evaluate(a, b, op)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidOperand) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "operands must be finite real numbers (Inf/NaN rejected)"})
		} else if errors.Is(err, errs.ErrDivisionByZero) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "division by zero"})
		} else if errors.Is(err, errs.ErrUnsupportedOperator) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unsupported operator"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		logger.Error("calculation rejected", zap.Float64("a", a), zap.Float64("b", b), zap.String("op", string(op)), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, types.CalculationResponse{
		A:        a,
		B:        b,
		Operator: string(op),
		Result:   result,
	})
}
