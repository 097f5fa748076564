package controller

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"pos/src/pos/application/usecase"
	"pos/src/pos/domain/entity"

	"github.com/gin-gonic/gin"
)

// TenantMiddleware resuelve el scope de tenant de la sesión a partir de la
// identidad opaca del operador (headers X-Operator-ID / X-Operator-Email)
// La resolución se cachea por par id+email y se reintenta cada vez que
// la identidad cambia; la falla es 403, nunca fatal
type TenantMiddleware struct {
	resolveUC *usecase.ResolveTenantUseCase

	mu    sync.RWMutex
	cache map[string]string // "operatorID|email" → tenantID
}

// NewTenantMiddleware crea el middleware de resolución de tenant
func NewTenantMiddleware(resolveUC *usecase.ResolveTenantUseCase) *TenantMiddleware {
	return &TenantMiddleware{
		resolveUC: resolveUC,
		cache:     make(map[string]string),
	}
}

// Handler retorna el gin.HandlerFunc que resuelve e inyecta el scope
func (m *TenantMiddleware) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		operatorID := ctx.GetHeader("X-Operator-ID")
		operatorEmail := ctx.GetHeader("X-Operator-Email")

		if operatorID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-Operator-ID header is required",
			})
			return
		}

		key := operatorID + "|" + operatorEmail

		m.mu.RLock()
		tenantID, cached := m.cache[key]
		m.mu.RUnlock()

		if !cached {
			resolved, err := m.resolveUC.Execute(ctx.Request.Context(), operatorID, operatorEmail)
			if err != nil {
				if errors.Is(err, entity.ErrNoTenantFound) {
					ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
						"error": "no tenant found for operator",
					})
					return
				}
				log.Printf("Error resolviendo tenant para %s: %v", operatorID, err)
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "tenant resolution failed",
				})
				return
			}
			tenantID = resolved

			m.mu.Lock()
			m.cache[key] = tenantID
			m.mu.Unlock()
		}

		sessionID := ctx.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = operatorID
		}

		ctx.Set("tenant_id", tenantID)
		ctx.Set("operator_id", operatorID)
		ctx.Set("operator_email", operatorEmail)
		ctx.Set("session_id", sessionID)
		ctx.Next()
	}
}
