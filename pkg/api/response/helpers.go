package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-lambda-go/events"
	log "github.com/sirupsen/logrus"
)

// CreateAPIGatewayResponse is a helper function to create and return a valid response
// for an API Gateway
func CreateAPIGatewayResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}

// CreateAPIGatewayJSONResponse - Create a JSON response
func CreateAPIGatewayJSONResponse(status int, response interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(response)

	// Create an error response, to handle the marshalling error
	if err != nil {
		log.Errorf("Failed to marshal JSON response: %v; %v", response, err)
		return ServerError()
	}

	return CreateAPIGatewayResponse(status, string(body))
}

// CreateAPIGatewayErrorResponse creates the API Gateway response for an
// error, using its status code when it has one
func CreateAPIGatewayErrorResponse(err error) events.APIGatewayProxyResponse {
	statusErr, ok := err.(*errors.StatusError)
	if !ok {
		statusErr = errors.NewInternalServer("unknown error", err)
	}

	body, mErr := json.Marshal(statusErr)
	if mErr != nil {
		log.Errorf("Failed to Create Valid Error Response: %s", mErr)
		return CreateAPIGatewayResponse(http.StatusInternalServerError, fmt.Sprintf(
			"{\"error\":\"Failed to Create Valid Error Response: %s\"}", mErr))
	}
	return CreateAPIGatewayResponse(statusErr.HTTPCode(), string(body))
}

// ServerError is the response for errors the handler could not classify
func ServerError() events.APIGatewayProxyResponse {
	return CreateAPIGatewayErrorResponse(errors.NewInternalServer("Internal server error", nil))
}
