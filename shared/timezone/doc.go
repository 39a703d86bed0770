// Package timezone resolves the application timezone from APP_TIMEZONE at import
// time and exposes Now, Parse and Format helpers bound to it. Calendar dates such as
// a portfolio shoot date travel as YYYY-MM-DD (see ParseDate and FormatDate).
package timezone
