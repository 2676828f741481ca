package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrorLog = log.New(os.Stderr, "ERROR ", log.Ldate|log.Ltime|log.Lshortfile)
var AccessLog = log.New(os.Stderr, "SERVER ", log.Ldate|log.Ltime)

func InitLoggers() {
	ErrorFile := &lumberjack.Logger{
		Filename:   filepath.Join(Site.LogDir, "errors.log"),
		MaxSize:    250,
		MaxBackups: 5,
		MaxAge:     10,
	}
	ErrorLog = log.New(ErrorFile, "ERROR ", log.Ldate|log.Ltime|log.Lshortfile)
	AccessLog = log.New(ErrorFile, "SERVER ", log.Ldate|log.Ltime)
}
