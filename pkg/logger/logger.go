package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例
var Log *zap.Logger

// Init 初始化 zap 日志
// mode 为 release 时输出 JSON 格式，否则输出带颜色的控制台格式
func Init(mode string) {
	var encoderCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder

	if mode == "release" {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	Log = zap.New(core, zap.AddCaller())
}

// Sync 刷新缓冲区，应在程序退出前调用
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
