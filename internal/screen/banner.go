package screen

// Banner is the title shown above the menu.
const Banner = ` _____                   _   _   _
|_   _|_      _____  ___| |_| | | | ___ _   _ _ __ ___
  | | \ \ /\ / / _ \/ _ \ __| |_| |/ _ \ | | | '__/ _ \
  | |  \ V  V /  __/  __/ |_|  _  |  __/ |_| | | |  __/
  |_|   \_/\_/ \___|\___|\__|_| |_|\___|\__,_|_|  \___|
`
