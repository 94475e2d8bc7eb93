package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			res := c.Response()
			status := res.Status
			if err != nil && !res.Committed {
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request failed", append(fields, zap.Error(err))...)
			case err != nil:
				logger.Info("request rejected", append(fields, zap.Error(err))...)
			default:
				logger.Info("request", fields...)
			}

			return err
		}
	}
}

func recoverer(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic in handler", zap.Any("panic", r), zap.Stack("stack"))
					err = fmt.Errorf("panic: %v", r)
					if !c.Response().Committed {
						if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal server error"}); e != nil {
							err = e
						}
					}
				}
			}()

			return next(c)
		}
	}
}
