/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for classification reports. Self-contained (no external assets)
so it renders the same in a browser, offline, or when printed to PDF.
*/

package reporting

// reportTemplate is the HTML template for a classification report
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Chomsky Classifier</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1000px;
            margin: 0 auto;
            padding: 20px;
        }

        .header, .card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            margin-bottom: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .header {
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
        }

        .header p, .meta {
            color: #718096;
        }

        .card h2 {
            color: #4a5568;
            font-size: 1.3rem;
            margin-bottom: 15px;
        }

        .type {
            font-size: 2rem;
            font-weight: 700;
            color: #2d3748;
        }

        .type-3 { color: #38a169; }
        .type-2 { color: #3182ce; }
        .type-1 { color: #d69e2e; }
        .type-0 { color: #e53e3e; }

        ul, ol {
            padding-left: 20px;
        }

        li {
            margin: 6px 0;
        }

        pre, code {
            font-family: 'Fira Code', Consolas, monospace;
            background: #f7fafc;
            border-radius: 8px;
        }

        pre {
            padding: 15px;
            overflow-x: auto;
        }

        .verdict-equal { color: #38a169; font-weight: 700; }
        .verdict-differ { color: #e53e3e; font-weight: 700; }
        .warning { color: #d69e2e; }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            text-align: left;
            padding: 8px;
            border-bottom: 1px solid #e2e8f0;
            vertical-align: top;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Generated {{formatTime .GeneratedAt}}</p>
            <p class="meta">Report <code id="report-id">{{.ID}}</code></p>
        </div>

        <div class="card" id="classification">
            <h2>Classification</h2>
            <div class="type type-{{printf "%d" .Classification.Type}}">{{.Classification.Label}}</div>
            <p class="meta">{{typeName .Classification.Type}} grammar</p>
            <ol id="explanations">
                {{range .Classification.Explanations}}<li>{{.}}</li>
                {{end}}
            </ol>
        </div>

        <div class="card" id="grammar">
            <h2>Grammar</h2>
            <table>
                <tr><th>Start symbol</th><td id="start">{{.Start}}</td></tr>
                <tr><th>Nonterminals</th><td id="nonterminals">{{join .Nonterminals ", "}}</td></tr>
                <tr><th>Terminals</th><td id="terminals">{{join .Terminals ", "}}</td></tr>
            </table>
            <h2>Productions</h2>
            <ul id="productions">
                {{range .Productions}}<li><code>{{.}}</code></li>
                {{end}}
            </ul>
        </div>

        {{if .Diagnostics}}
        <div class="card" id="diagnostics">
            <h2>Parse diagnostics</h2>
            <ul>
                {{range .Diagnostics}}<li class="warning">line {{.Line}}: {{.Message}} <code>{{.Text}}</code></li>
                {{end}}
            </ul>
        </div>
        {{end}}

        {{if .Notes}}
        <div class="card" id="notes">
            <h2>Notes</h2>
            <ul>
                {{range .Notes}}<li>{{.}}</li>
                {{end}}
            </ul>
        </div>
        {{end}}

        {{with .Comparison}}
        <div class="card" id="comparison">
            <h2>Comparison</h2>
            <pre id="other-grammar">{{.OtherText}}</pre>
            {{if .Result.Equivalent}}
            <p class="verdict verdict-equal">Both grammars generated the same strings up to length {{.Result.MaxLen}}.</p>
            {{else}}
            <p class="verdict verdict-differ">The grammars generated different strings up to length {{.Result.MaxLen}}.</p>
            {{end}}
            {{if .Result.Truncated}}<p class="warning" id="truncated">The search was truncated; some strings within the bounds may be missing.</p>{{end}}
            <table>
                <tr><th>Only in this grammar</th><td id="only1">{{join .Result.Only1 ", "}}</td></tr>
                <tr><th>Only in the other grammar</th><td id="only2">{{join .Result.Only2 ", "}}</td></tr>
                <tr><th>Common</th><td id="common">{{join .Result.Common ", "}}</td></tr>
            </table>
            <p class="meta">Bounded check: length &le; {{.Result.MaxLen}}, at most {{.Result.MaxSteps}} derivation steps. This is not a proof of equivalence.</p>
        </div>
        {{end}}

        <div class="card" id="graph">
            <h2>Graphviz</h2>
            <pre id="dot">{{.DOT}}</pre>
        </div>
    </div>
</body>
</html>
`
