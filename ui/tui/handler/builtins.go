// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

func init() {
	Register("input", NewString)
	Register("string", NewString)
	Register("password", NewPassword)
	Register("text", NewText)
	Register("path", NewPath)
	Register("selectone", NewSelectOne)
	Register("selectmany", NewSelectMany)
	Register("repassword", NewRePassword)
}
