package cli

const (
	// Use is the one-line synopsis.
	Use = "enigma [flags] PLUGBOARD REFLECTOR [ROTOR ...] POSITIONS"

	// Long is printed at the top of --help.
	Long = `enigma – rotor cipher machine

Encrypts (and, being reciprocal, decrypts) a message of letters A-Z read from
STDIN or --text. White space in the message is ignored.

Configuration files hold white-space separated integers 0-25:
  PLUGBOARD   pairs of contacts to swap (may be empty)
  REFLECTOR   13 pairs covering all 26 contacts
  ROTOR       26 mapping values, then notch positions
  POSITIONS   one starting position per rotor, leftmost first

Exit codes:
  0 ok, 1 missing arguments, 2 invalid input character, 3 invalid index,
  4 non-numeric character, 5 impossible plugboard, 6 plugboard count,
  7 invalid rotor mapping, 8 starting positions, 9 invalid reflector,
  10 reflector count, 11 cannot open configuration file`

	// Example is the quickstart block.
	Example = `  echo HELLOWORLD | enigma plugboards/I.pb reflectors/I.rf rotors/I.rot rotors/II.rot rotors/III.rot rotors/I.pos
  enigma --machine m3.yaml --text AAAAA
  enigma --machine m3.yaml --lines --output jsonl < messages.txt`
)
