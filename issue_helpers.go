package shapematch

import "github.com/reoring/shapematch/i18n"

// IssueAt creates an Issue at the given path with a localized message for code.
// data is interpolated into the message and copied into Params.
func IssueAt(p PathRef, code string, data map[string]string) Issue {
	params := make(map[string]any, len(data))
	for k, v := range data {
		params[k] = v
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}
