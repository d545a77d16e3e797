package erpdomain

// RawTransaction is one element of the OData "value" array, decoded with numbers kept as json.Number.
type RawTransaction map[string]interface{}

type TransactionsPage struct {
	Value    []RawTransaction `json:"value"`
	NextLink string           `json:"@odata.nextLink"`
}

// ODataErrorResponse is the error body returned by Dynamics 365 on non-2xx responses.
type ODataErrorResponse struct {
	Error ODataErrorDetails `json:"error"`
}

type ODataErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
