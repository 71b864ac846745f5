package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting bouncer":              "bouncer を開始します",
		"Decoding background %s":        "背景画像 %s をデコード中",
		"Background decoded: %dx%d":     "背景画像のデコード完了: %dx%d",
		"Rendering %d frames":           "%d フレームを描画中",
		"%d frames written":             "%d フレームを書き出しました",
		"Assembling video %s":           "動画 %s を作成中",
		"Video saved to %s (%d bytes)":  "動画を %s に保存しました (%d バイト)",
		"Run completed successfully":    "正常に完了しました",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Frames saved: %s ... %s":       "フレームを保存しました: %s ... %s",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Codec
		"Input %s: %s, %dx%d, %d bytes": "入力 %s: %s, %dx%d, %d バイト",
		"Scaling %dx%d to %dx%d":        "%dx%d を %dx%d に拡大縮小",

		// Decode stage
		"Background decoded: %dx%d, stride %d": "背景画像のデコード完了: %dx%d, ストライド %d",

		// Animate stage
		"Rendering %d frames with %d workers": "%d フレームを %d ワーカーで描画中",
		"Frame %d written to %s":              "フレーム %d を %s に書き出しました",

		// Video
		"Running %s %s":                        "%s %s を実行中",
		"Video %s: %s %dx%d, %d samples, %d ms": "動画 %s: %s %dx%d, %d サンプル, %d ms",

		// Warnings
		"Skipping video because some frames are missing": "一部のフレームが欠落しているため動画の作成をスキップします",
		"Video has %d samples, expected %d":              "動画のサンプル数が %d です (期待値 %d)",
		"Failed to probe video %s: %s":                   "動画 %s の解析に失敗しました: %s",
		"Failed to read size of video %s: %s":            "動画 %s のサイズ取得に失敗しました: %s",
		"Failed to save debug background: %s":            "デバッグ用背景画像の保存に失敗しました: %s",
		"Failed to save motion debug output: %s":         "モーションのデバッグ出力に失敗しました: %s",
		"Failed to save annotated frame %d: %s":          "注釈付きフレーム %d の保存に失敗しました: %s",
		"Failed to write summary: %s":                    "サマリーの書き込みに失敗しました: %s",

		// Errors
		"Failed to decode background: %s": "背景画像のデコードに失敗しました: %s",
		"Failed to render frames: %s":     "フレームの描画に失敗しました: %s",
		"Failed to assemble video: %s":    "動画の作成に失敗しました: %s",
		"Frame %d failed: %s":             "フレーム %d が失敗しました: %s",
		"%d of %d frames failed: %v":      "%d / %d フレームが失敗しました: %v",
		"%d of %d frames written":         "%d / %d フレームを書き出しました",
		"Run failed: %s":                  "実行に失敗しました: %s",
	})
}
