package predict

import "cfpredict/failure"

var MISSING_INPUT_ERROR = `Please enter both handle and contest ID.`
var INVALID_CONTEST_ERROR = `Contest ID must be a positive number.`
var RETRIEVE_ERROR = `Could not retrieve contest or user data. Check inputs.`
var TRANSPORT_ERROR = `Remote API request failed, try again later.`
var HISTORY_DISABLED_ERROR = `Prediction history is not enabled.`
var DATABASE_ERROR = `Error in database`

// UserMessage maps a prediction failure to what the user is shown. Upstream
// status failures and unknown handles share one message.
func UserMessage(err error) string {
	switch failure.KindOf(err) {
	case failure.MissingInput:
		return MISSING_INPUT_ERROR
	case failure.InvalidInput:
		return INVALID_CONTEST_ERROR
	case failure.Transport:
		return TRANSPORT_ERROR
	}
	return RETRIEVE_ERROR
}
