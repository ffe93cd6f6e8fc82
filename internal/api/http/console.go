package httpapi

// consolePage is the terminal-style web console served at the root.
const consolePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>NeuroWeather</title>
<style>
:root {
	--terminal-orange: #ff6600;
	--terminal-bg: #1a1a1a;
	--terminal-panel: #262626;
	--terminal-glow: 0 0 8px rgba(255, 102, 0, 0.4);
}
body {
	background-color: var(--terminal-bg);
	color: var(--terminal-orange);
	font-family: "Fira Code", "Courier New", monospace;
	max-width: 720px;
	margin: 40px auto;
	padding: 0 16px;
}
h1 {
	text-shadow: var(--terminal-glow);
	text-align: center;
	border-bottom: 2px solid var(--terminal-orange);
	padding-bottom: 10px;
	background-color: var(--terminal-panel);
}
textarea, #output {
	width: 100%;
	background-color: var(--terminal-panel);
	color: var(--terminal-orange);
	border: 1px solid #555;
	font-family: inherit;
	font-size: 16px;
	padding: 8px;
	box-sizing: border-box;
}
#output { min-height: 120px; white-space: pre-wrap; margin-top: 16px; }
button {
	background-color: var(--terminal-orange);
	color: #1a1a1a;
	border: 1px solid var(--terminal-orange);
	font-weight: bold;
	text-transform: uppercase;
	padding: 8px 24px;
	margin-top: 8px;
	cursor: pointer;
}
</style>
</head>
<body>
<h1>// NEURO_WEATHER_CORE</h1>
<textarea id="query" rows="2" placeholder="Enter weather query..."></textarea>
<button id="submit">Execute</button>
<div id="output">&gt; Standby...</div>
<script>
const output = document.getElementById("output");
const query = document.getElementById("query");

async function ask() {
	const text = query.value.trim();
	if (!text) {
		output.textContent = "ERROR: Empty Input";
		return;
	}
	output.textContent = "> Processing...";
	try {
		const resp = await fetch("/api/v1/ask", {
			method: "POST",
			headers: {"Content-Type": "application/json"},
			body: JSON.stringify({query: text}),
		});
		const data = await resp.json();
		output.textContent = data.answer || data.message || "SYSTEM FAILURE";
	} catch (err) {
		output.textContent = "SYSTEM FAILURE: " + err;
	}
}

document.getElementById("submit").addEventListener("click", ask);
query.addEventListener("keydown", (e) => {
	if (e.key === "Enter" && !e.shiftKey) {
		e.preventDefault();
		ask();
	}
});
</script>
</body>
</html>`
