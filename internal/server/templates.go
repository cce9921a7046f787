package server

// pagesTemplate holds the HTML pages served by the interactive surface.
const pagesTemplate = `
{{define "index"}}<!DOCTYPE html>
<html>
<head><title>Stock Candlestick Analysis</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
label { display: block; margin-top: 1em; }
input { padding: 0.3em; }
button { margin-top: 1.5em; padding: 0.5em 1.5em; }
</style>
</head>
<body>
<h1>Stock Candlestick Analysis</h1>
<form action="/analyze" method="get">
  <label>Stock Symbol (e.g., AAPL, TSLA):
    <input type="text" name="symbol" value="{{.Symbol}}">
  </label>
  <label>Start Date:
    <input type="date" name="start" value="{{.Start}}">
  </label>
  <label>End Date:
    <input type="date" name="end" value="{{.End}}">
  </label>
  <button type="submit">Analyze Stock</button>
</form>
</body>
</html>{{end}}

{{define "result"}}<!DOCTYPE html>
<html>
<head><title>{{.Symbol}} Analysis</title>
<style>
body { font-family: sans-serif; max-width: 1140px; margin: 2em auto; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
iframe { border: none; width: 100%; height: 560px; margin-top: 1.5em; }
</style>
</head>
<body>
<h1>Prediction Probabilities for {{.Symbol}}</h1>
<p>{{.Start}} to {{.End}} &mdash; {{.Bars}} bars analyzed{{if .Dropped}} ({{.Dropped}} malformed bars dropped){{end}}</p>
<table>
  <tr><th>Direction</th><th>Probability</th></tr>
  <tr><td>Up</td><td>{{.Up}}</td></tr>
  <tr><td>Down</td><td>{{.Down}}</td></tr>
  <tr><td>Neutral</td><td>{{.Neutral}}</td></tr>
</table>
<table>
  <tr><th>Pattern</th><th>Count</th></tr>
  <tr><td>Doji</td><td>{{.Doji}}</td></tr>
  <tr><td>Hammer</td><td>{{.Hammer}}</td></tr>
  <tr><td>Bullish Engulfing</td><td>{{.BullEngulf}}</td></tr>
  <tr><td>Bearish Engulfing</td><td>{{.BearEngulf}}</td></tr>
</table>
<p><a href="{{.ExportURL}}">Download Analyzed Data as CSV</a> | <a href="/">New analysis</a></p>
<iframe src="{{.ChartURL}}"></iframe>
</body>
</html>{{end}}

{{define "message"}}<!DOCTYPE html>
<html>
<head><title>Stock Candlestick Analysis</title></head>
<body style="font-family: sans-serif; max-width: 720px; margin: 2em auto;">
<p>{{.Message}}</p>
<p><a href="/">Back</a></p>
</body>
</html>{{end}}
`
