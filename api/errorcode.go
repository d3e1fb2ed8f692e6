package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "address is required",
		1101: "no matched address found",
		1102: "address is not inside the area defined for the project",
		1103: "invalid latitude/longitude values",

		1200: "property not found",
		1201: "no bus stops found within walking distance",
		1202: "no matching transit route",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAddressRequired = errorJSON(1100)
	errorNoMatch         = errorJSON(1101)
	errorOutOfArea       = errorJSON(1102)
	errorInvalidLocation = errorJSON(1103)

	errorPropertyNotFound = errorJSON(1200)
	errorNoBusStops       = errorJSON(1201)
	errorRouteNotFound    = errorJSON(1202)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
