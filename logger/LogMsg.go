package logger

const ConfigLoadedMsg = "設定載入完成 backend: %s, %dx%d @ %d fps"
const ConfigInvalidMsg = "設定錯誤，無法啟動：%v"

const BackendInitFailedMsg = "無法初始化 %s 畫面：%v"

const GameStartMsg = "遊戲開始！！！"
const GameStopMsg = "遊戲結束 比分 %d : %d"

const ScoreMsg = "得分！目前比分 %d : %d"

const QuitKeyMsg = "玩家按下離開鍵"
