package config

import (
	"cfpredict/entity"
	"encoding/gob"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

var COOKIE_NAME = `cfpredict`

var Store *sessions.CookieStore

func InitCookies() {
	gob.Register(entity.LastQuery{})
	key := []byte(Site.CookieKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	Store = sessions.NewCookieStore(key)
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
	}
}
