// Package store holds the domain records of the club app and the
// repositories that read and write them in firestore and the realtime
// database.
package store

import "time"

// Semester is one organizational term. Records are pre-created by an
// administrator under Semester/{id}; one of them is promoted to the
// Current/Semester pointer once its predecessor ends.
type Semester struct {
	ID    int64     `firestore:"id"`
	Begin time.Time `firestore:"begin"`
	End   time.Time `firestore:"end"`
	Short string    `firestore:"short"`
	Long  string    `firestore:"long"`
}

// Person is a member record. A nil UID means the member signed out; an
// absent record means the member was deleted.
type Person struct {
	UID       *string `firestore:"uid"`
	FirstName string  `firestore:"first_Name"`
	LastName  string  `firestore:"last_Name"`
	Balance   float64 `firestore:"balance"`
	FCMToken  string  `firestore:"fcm_token"`
}

// TokenEntry is a row of the FCM_Data side table, mirroring the push
// related fields of a signed-in Person.
type TokenEntry struct {
	UID       string `firestore:"uid"`
	FirstName string `firestore:"first_Name"`
	LastName  string `firestore:"last_Name"`
	FCMToken  string `firestore:"fcm_token"`
}

// NewsItem is a news post. Content may be written by the app as a single
// string or as an array of paragraphs.
type NewsItem struct {
	Title    string      `firestore:"title"`
	Content  interface{} `firestore:"content"`
	Image    string      `firestore:"image"`
	Draft    bool        `firestore:"draft"`
	Internal bool        `firestore:"internal"`
}

// RestockUID marks a drink sale as a restock expense instead of a purchase.
const RestockUID = "buy"

// DrinkSale is one append-only ledger event from a Semester/{id}/Drink
// sub-collection.
type DrinkSale struct {
	Amount float64 `firestore:"amount"`
	Price  float64 `firestore:"price"`
	UID    string  `firestore:"uid"`
}

// Counters is the singleton drink counter document kept in the realtime
// database under counter/drink.
type Counters struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalCounter float64 `json:"totalCounter"`
	TotalExpense float64 `json:"totalExpense"`
}

// ReminderFlag is the singleton trigger document for the balance reminder
// broadcast. Writing send=true starts a broadcast, the broadcaster writes
// it back to false when it is done.
type ReminderFlag struct {
	Send bool `json:"send"`
}
