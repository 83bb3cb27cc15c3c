package common

// PlaceholderLabel is the display text shown for fields of a provisional
// record until the server response fills in the real values.
const PlaceholderLabel = "Chargement..."

// RefreshPath is the endpoint that exchanges the refresh cookie for a new
// access cookie. It takes no body; credentials travel as cookies.
const RefreshPath = "jwt/refresh/"
