// Package api contains the HTTP handlers of the service: the register and
// login endpoints and the CRUD handlers for courses, orders, products and
// students. Each handler translates one request into one store call.
//
// Every failure goes through HandleError, which classifies the error and
// writes the JSON error envelope. Register conflicts and failed logins are
// the only responses that bypass it; they carry a bare {"message": ...} body.
package api
