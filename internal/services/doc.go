// Package services holds the LetsTalk business logic.
//
//   - AccountService: signup, login, the persisted session pointer and
//     profile edits.
//   - LedgerService: posts, responses and the response-credit economy.
//   - GraphService: friend requests and mutual friendship links.
//
// Every operation that acts on behalf of a user takes an explicit
// *models.Session. Expected business failures are returned as the sentinel
// errors of package common; match them with errors.Is.
package services
