// Package main provides localization for the bouncer CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render a bouncing disc over a background image as numbered frames.": "背景画像の上で弾むボールを連番フレームとして描画します。",

		// Argument errors
		"Invalid arguments: %s":              "引数が正しくありません: %s",
		"Background must be a .jpg file: %s": "背景画像は .jpg ファイルである必要があります: %s",
		"Invalid configuration: %s":          "設定が正しくありません: %s",

		// Summary labels
		"Bouncer Summary":   "bouncer 実行サマリー",
		"Background":        "背景画像",
		"Label":             "項目",
		"Value":             "値",
		"File":              "ファイル",
		"Size":              "サイズ",
		"Settings":          "設定",
		"Format":            "形式",
		"Disc Radius":       "ボール半径",
		"Motion Steps":      "モーション段数",
		"Workers":           "ワーカー数",
		"Continue on Error": "エラー時も続行",
		"Yes":               "はい",
		"No":                "いいえ",
		"Frames":            "フレーム",
		"Written":           "書き出し",
		"Failed":            "失敗",
		"Output Directory":  "出力ディレクトリ",
		"Files":             "ファイル範囲",
		"Timing":            "処理時間",
		"Decode":            "デコード",
		"Render and Encode": "描画とエンコード",
		"Per Frame":         "1フレームあたり",
		"Total":             "合計",
		"Preview Video":     "プレビュー動画",
		"Codec":             "コーデック",
		"Samples":           "サンプル数",
		"Duration":          "長さ",
		"File Size":         "ファイルサイズ",
		"Generated at":      "生成日時",
	})
}
