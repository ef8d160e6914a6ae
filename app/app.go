package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"net/http"
	"os"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

type NetlifyFunction func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error)

// corsHeaders are attached to every response so the dashboard can call the
// functions from its own origin.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
}

func CorsMiddleware(function NetlifyFunction) NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		if request.HTTPMethod == http.MethodOptions {
			return NetlifyJsonResponse(200, map[string]any{"message": "CORS preflight response"})
		}
		return function(ctx, request)
	}
}

// CheckEnvMiddleware disables a function on environments listed in ENV_DISABLE.
// An unset ENV is treated as enabled so local invocations keep working.
func CheckEnvMiddleware(function NetlifyFunction) NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		currentEnv := os.Getenv("ENV")
		disabledEnvs := os.Getenv("ENV_DISABLE")
		if disabledEnvs != "" && slices.Contains(strings.Split(disabledEnvs, ","), currentEnv) {
			return NetlifyResponse(404, "Not Found")
		}

		return function(ctx, request)
	}
}

func ProfilingMiddleware(function NetlifyFunction, filename string) NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		if os.Getenv("PROFILING") == "1" && os.Getenv("ENV") == "LOCAL" {
			path := os.Getenv("PROFILING_PATH")
			if path != "" {
				if string(path[len(path)-1]) != "/" {
					path += "/"
				}
				filename = path + filename
			}
			filename += ".out"
			f, err := os.Create(filename)
			if err != nil {
				log.Printf("!!! Could not create trace profile for %v: %v", filename, err)
			} else {
				defer f.Close()
				if err := trace.Start(f); err != nil {
					f.Close()
					log.Printf("!!! Could not start trace profile for %v: %v", filename, err)
				} else {
					defer trace.Stop()
					fmt.Printf("!!! Tracing on for: %v\n", filename)
				}
			}
		}

		return function(ctx, request)
	}
}

// TimeoutMiddleware caps a function run just under the Netlify 10 second
// limit so the caller gets a response instead of a platform kill.
func TimeoutMiddleware(function NetlifyFunction) NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		timeoutCtx, cancel := context.WithTimeout(ctx, 9500*time.Millisecond)
		defer cancel()

		type result struct {
			Response *events.APIGatewayProxyResponse
			Error    error
		}

		resultChan := make(chan result, 1)

		go func() {
			response, err := function(timeoutCtx, request)
			resultChan <- result{
				Response: response,
				Error:    err,
			}
		}()

		select {
		case res := <-resultChan:
			return res.Response, res.Error
		case <-timeoutCtx.Done():
			return NetlifyResponse(int(http.StatusGatewayTimeout), "Request timed out")
		}
	}
}

// BearerToken extracts the caller-supplied token from the Authorization
// header. Netlify lowercases incoming header names.
func BearerToken(request events.APIGatewayProxyRequest) (string, error) {
	header, found := request.Headers["authorization"]
	if !found {
		header = request.Headers["Authorization"]
	}
	token, isBearer := strings.CutPrefix(header, "Bearer ")
	if !isBearer || token == "" {
		return "", fmt.Errorf("authorization token is required")
	}
	return token, nil
}

func NetlifyResponseWithHeaders(statusCode int, body string, headers map[string]string) (*events.APIGatewayProxyResponse, error) {
	allHeaders := map[string]string{}
	maps.Copy(allHeaders, corsHeaders)
	maps.Copy(allHeaders, headers)
	return &events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers:    allHeaders,
	}, nil
}

func NetlifyResponse(statusCode int, body string) (*events.APIGatewayProxyResponse, error) {
	return NetlifyResponseWithHeaders(statusCode, body, nil)
}

func NetlifyJsonResponse(statusCode int, data any) (*events.APIGatewayProxyResponse, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshalling Netlify JSON response: %v", err)
		return NetlifyResponse(500, "Internal Error")
	}
	return NetlifyResponseWithHeaders(statusCode, string(jsonData), map[string]string{
		"Content-Type": "application/json",
	})
}

func NetlifyRedirectResponse(location string) (*events.APIGatewayProxyResponse, error) {
	return NetlifyResponseWithHeaders(302, "", map[string]string{
		"Location": location,
	})
}

func logBodyAndError(body any, err error) {
	if err != nil {
		log.Printf("%v\n>>> %v", body, err)
	} else {
		log.Println(body)
	}
}

func NetlifyLogAndResponse(statusCode int, body string, err error) (*events.APIGatewayProxyResponse, error) {
	logBodyAndError(body, err)
	return NetlifyResponse(statusCode, body)
}

func NetlifyLogAndJsonResponse(statusCode int, body any, err error) (*events.APIGatewayProxyResponse, error) {
	logBodyAndError(body, err)
	return NetlifyJsonResponse(statusCode, body)
}
